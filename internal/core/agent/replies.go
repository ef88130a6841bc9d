package agent

import (
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/catalog"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/template"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

var productPlaceholders = []string{"product_name", "price", "stock"}

const datePlaceholder = "date_time"

// Canned replies.
const (
	replyGreet         = "Hola, ¿en qué puedo ayudarte?"
	replyBye           = "Gracias por tu visita."
	replyRephrase      = "¿Podés reformular?"
	replyNeedMoreData  = "Necesito un dato más para responderte. ¿Podés aclarar?"
	replyNoProducts    = "No tengo productos cargados."
	replySlotTaken     = "Ese horario no está disponible. ¿Querés que te proponga alternativas?"
	replyNotConfigured = "no configurado"
)

// clarification replaces a rule reply that still has unresolved placeholders.
func clarification(action string, names []string, hours string) string {
	switch {
	case template.References(action, productPlaceholders...):
		if len(names) == 0 {
			return replyNoProducts
		}
		return "Algunos productos: " + strings.Join(names, ", ") + ". Decime cuál te interesa."
	case template.References(action, datePlaceholder):
		if hours == "" {
			return "Decime día y hora."
		}
		return fmt.Sprintf("Decime día y hora (horarios: %s).", hours)
	default:
		return replyNeedMoreData
	}
}

// offlineReply answers when no language model is configured.
func offlineReply(cfg *models.BotConfig, names []string) string {
	if cfg.Mode == models.ModeReservations {
		return servicesPrefix("Servicios: ", cfg.ServiceList) + "Decime día y hora y verifico disponibilidad."
	}
	if len(names) == 0 {
		return replyNoProducts
	}
	return "Vendemos: " + strings.Join(names, ", ") + ". Decime cuál te interesa."
}

func unknownReply(cfg *models.BotConfig, names []string) string {
	if cfg.Mode == models.ModeReservations {
		return servicesPrefix("Podés reservar: ", cfg.ServiceList) + "Decime día y hora y verifico."
	}
	if len(names) == 0 {
		return "Puedo ayudarte con precios y stock. Cargá productos primero."
	}
	return "Puedo ayudarte con precios y stock. Algunos productos: " + strings.Join(names, ", ") + "."
}

func catalogReply(names []string) string {
	if len(names) == 0 {
		return "Aún no hay productos cargados."
	}
	return "Vendemos: " + strings.Join(names, ", ") + ". Decime cuál te interesa."
}

func productReply(p *models.Product, names []string) string {
	if p != nil {
		return fmt.Sprintf("Tenemos %s. Precio $%s. Stock %d.", p.Name, catalog.FormatPrice(p.Price), p.Stock)
	}
	if len(names) == 0 {
		return replyNoProducts
	}
	return "No encontré ese producto. Algunos productos: " + strings.Join(names, ", ") + ". Decime cuál te interesa."
}

func profileReply(value, format, missing string) string {
	if value == "" {
		return missing
	}
	return fmt.Sprintf(format, value)
}

func askDateReply(hours string) string {
	if hours == "" {
		hours = replyNotConfigured
	}
	return fmt.Sprintf("Decime día y hora. Horarios: %s.", hours)
}

func cancelReply(cfg *models.BotConfig) string {
	contact := ""
	if cfg.Phone != "" {
		contact = " al " + cfg.Phone
	}
	policy := cfg.CancellationPolicy
	if policy == "" {
		policy = "no configurada"
	}
	return fmt.Sprintf("Para cancelar tu turno comunicate con nosotros%s. Política de cancelación: %s.", contact, policy)
}

func servicesPrefix(label, services string) string {
	if services == "" {
		return ""
	}
	return label + services + ". "
}

func firstN(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	return names
}
