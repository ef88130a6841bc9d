package nlu

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

func classifySystemPrompt(mode string) string {
	var sb strings.Builder

	sb.WriteString("Eres un clasificador. Devuelve JSON con {intent, slots}.\n")
	sb.WriteString(fmt.Sprintf("Intents permitidos (%s): [\"%s\"].\n", mode, strings.Join(Intents(mode), "\",\"")))
	sb.WriteString("Si ninguno aplica usa \"unknown\".\n")
	sb.WriteString("Slots permitidos: product_name, date_time, customer, service. No inventes datos.")

	return sb.String()
}

func classifyUserPrompt(message, mode string) string {
	return fmt.Sprintf("Texto: %q. Modo: %q. Responde SOLO JSON.", message, mode)
}

func renderSystemPrompt(facts Facts) string {
	ctxJSON, err := json.Marshal(facts)
	if err != nil {
		ctxJSON = []byte("{}")
	}

	var sb strings.Builder
	sb.WriteString("Redacta una respuesta breve y natural en español usando SOLO este contexto JSON.\n")
	sb.WriteString("- No agregues datos nuevos.\n")
	sb.WriteString("- Si falta un dato, pídelo.\n")
	sb.WriteString("Contexto: ")
	sb.Write(ctxJSON)

	return sb.String()
}

func renderUserPrompt(message string) string {
	return fmt.Sprintf("Usuario: %q", message)
}

func dateSystemPrompt(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return fmt.Sprintf("Convierte a ISO YYYY-MM-DDTHH:mm:ss en zona %s. Hoy es %s. Si no entiendes, responde null.",
		loc.String(), time.Now().In(loc).Format("2006-01-02 (Monday)"))
}

func dateUserPrompt(phrase string) string {
	return fmt.Sprintf("Frase: %q. Responde SOLO el ISO o null.", phrase)
}
