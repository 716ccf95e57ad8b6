package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/financaslar/api-financas/internal/adiantamento"
	"github.com/financaslar/api-financas/internal/auth"
	"github.com/financaslar/api-financas/internal/cache"
	"github.com/financaslar/api-financas/internal/categoria"
	"github.com/financaslar/api-financas/internal/conta"
	"github.com/financaslar/api-financas/internal/dashboard"
	"github.com/financaslar/api-financas/internal/financiamento"
	"github.com/financaslar/api-financas/internal/historico"
	"github.com/financaslar/api-financas/internal/lancamento"
	"github.com/financaslar/api-financas/internal/parcela"
	"github.com/financaslar/api-financas/internal/usuario"
	"github.com/financaslar/api-financas/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := usuario.Migrate(conn); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := categoria.Migrate(conn); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := conta.Migrate(conn); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := financiamento.Migrate(conn); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := parcela.Migrate(conn); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := historico.Migrate(conn); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := lancamento.Migrate(conn); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Cache do dashboard: Redis quando configurado, memória caso contrário.
	var c cache.Cache = cache.NewMemoriaCache()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c = cache.NewRedisCache(addr)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conn)
	categoriaHandler := categoria.NewHandler(categoria.NewRepository(conn))
	contaHandler := conta.NewHandler(conta.NewRepository(conn))
	lancamentoHandler := lancamento.NewHandler(lancamento.NewRepository(conn))
	financiamentoHandler := financiamento.NewHandler(conn)
	adiantamentoHandler := adiantamento.NewHandler(conn)
	dashboardHandler := dashboard.NewHandler(conn, c)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de categorias
	api.HandleFunc("/categorias", categoriaHandler.Criar).Methods("POST")
	api.HandleFunc("/categorias", categoriaHandler.Listar).Methods("GET")
	api.HandleFunc("/categorias/{id}", categoriaHandler.Deletar).Methods("DELETE")

	// Rotas de contas
	api.HandleFunc("/contas", contaHandler.Criar).Methods("POST")
	api.HandleFunc("/contas", contaHandler.Listar).Methods("GET")

	// Rotas de lançamentos
	api.HandleFunc("/lancamentos", lancamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/lancamentos", lancamentoHandler.Listar).Methods("GET")

	// Rotas de financiamentos
	api.HandleFunc("/financiamentos/simular", financiamentoHandler.Simular).Methods("POST")
	api.HandleFunc("/financiamentos/comparar", financiamentoHandler.Comparar).Methods("POST")
	api.HandleFunc("/financiamentos", financiamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/financiamentos", financiamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/financiamentos/pagar-parcela", financiamentoHandler.PagarParcela).Methods("POST")
	api.HandleFunc("/financiamentos/adiantar-parcelas", adiantamentoHandler.Aplicar).Methods("POST")
	api.HandleFunc("/financiamentos/{id}", financiamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/financiamentos/{id}", financiamentoHandler.Excluir).Methods("DELETE")
	api.HandleFunc("/financiamentos/{id}/parcelas", financiamentoHandler.ListarParcelas).Methods("GET")
	api.HandleFunc("/financiamentos/{id}/simular-quitacao", financiamentoHandler.SimularQuitacao).Methods("GET")
	api.HandleFunc("/financiamentos/{id}/historico", financiamentoHandler.ListarHistorico).Methods("GET")

	// Rota de dashboard
	api.HandleFunc("/dashboard/financiamentos", dashboardHandler.Resumo).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
