package infrastructure

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"FinMate/config"
	"FinMate/internal/domain/helpdesk"
	"FinMate/internal/logger"
)

// SMTPNotifier repassa chamados abertos para a caixa de suporte via SMTP
// simples. Quando o SMTP esta desabilitado na configuracao o envio vira noop,
// util em desenvolvimento local.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	if !cfg.SMTP.Enabled {
		logger.Warn().Msg("SMTP desabilitado; notificacoes de chamados nao serao enviadas")
	}
	return &SMTPNotifier{cfg: cfg.SMTP}
}

func (n *SMTPNotifier) SendTicketCreated(ctx context.Context, ticket *helpdesk.Ticket) error {
	if !n.cfg.Enabled {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&body, "To: %s\r\n", n.cfg.SupportAddr)
	fmt.Fprintf(&body, "Reply-To: %s\r\n", ticket.Email)
	fmt.Fprintf(&body, "Subject: [Suporte] %s\r\n", ticket.Title)
	body.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&body, "Chamado %s aberto por %s (%s)\r\n\r\n%s\r\n", ticket.Id.String(), ticket.Name, ticket.Email, ticket.Description)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{n.cfg.SupportAddr}, []byte(body.String())); err != nil {
		return err
	}

	logger.Info().
		Str("ticket_id", ticket.Id.String()).
		Msg("Notificacao de chamado enviada ao suporte")
	return nil
}
