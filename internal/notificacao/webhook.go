package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookQuitacao avisa um webhook externo que um financiamento foi
// quitado. Melhor esforço: falha só gera log, nunca interrompe a operação.
func EnviarWebhookQuitacao(financiamentoID uint, descricao string) {
	url := os.Getenv("WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"mensagem":        "Financiamento quitado",
		"financiamentoId": financiamentoID,
		"descricao":       descricao,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
