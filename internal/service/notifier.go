package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/email"
)

// NotifierConfig agrupa los valores fijos de los correos de notificación.
type NotifierConfig struct {
	AdminEmail   string
	SenderName   string
	PortfolioURL string
	WhatsAppURL  string
	LinkedInURL  string
}

// Notifier construye y despacha los dos correos de un envio de contacto:
// la notificación al administrador y la auto-respuesta al remitente.
type Notifier struct {
	sender email.Sender
	cfg    NotifierConfig
}

func NewNotifier(sender email.Sender, cfg NotifierConfig) *Notifier {
	return &Notifier{sender: sender, cfg: cfg}
}

var adminTemplate = template.Must(template.New("admin").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>New contact message</h2>
  <table cellpadding="4">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>Subject</strong></td><td>{{.Subject}}</td></tr>
    <tr><td><strong>Received</strong></td><td>{{.ReceivedAt}}</td></tr>
    <tr><td><strong>IP</strong></td><td>{{.IPAddress}}</td></tr>
  </table>
  <h3>Message</h3>
  {{range .Paragraphs}}<p>{{.}}</p>
  {{end}}
</body>
</html>`))

var autoReplyTemplate = template.Must(template.New("autoreply").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <p>Hi {{.Name}},</p>
  <p>Thanks for reaching out. I received your message "<strong>{{.Subject}}</strong>" on {{.ReceivedAt}} and will get back to you as soon as possible.</p>
  <p>In the meantime, you can find more of my work here:</p>
  <ul>
    <li><a href="{{.PortfolioURL}}">Portfolio</a></li>
    <li><a href="{{.WhatsAppURL}}">WhatsApp</a></li>
    <li><a href="{{.LinkedInURL}}">LinkedIn</a></li>
  </ul>
  <p>Best regards,<br>{{.SenderName}}</p>
</body>
</html>`))

// NotifySubmission despacha ambos correos en paralelo y espera a que los dos
// terminen. Devuelve el primer error si alguno falla; el llamador decide si
// lo descarta.
func (n *Notifier) NotifySubmission(ctx context.Context, msg domain.ContactMessage) error {
	adminMsg, err := n.buildAdminMessage(msg)
	if err != nil {
		return err
	}
	replyMsg, err := n.buildAutoReply(msg)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		return n.sender.Send(ctx, adminMsg)
	})
	g.Go(func() error {
		return n.sender.Send(ctx, replyMsg)
	})
	return g.Wait()
}

func (n *Notifier) buildAdminMessage(msg domain.ContactMessage) (email.Message, error) {
	ip := msg.IPAddress
	if ip == "" {
		ip = "unknown"
	}
	data := struct {
		Name       string
		Email      string
		Subject    string
		ReceivedAt string
		IPAddress  string
		Paragraphs []string
	}{
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		ReceivedAt: formatTimestamp(msg.CreatedAt),
		IPAddress:  ip,
		Paragraphs: splitParagraphs(msg.Message),
	}

	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, data); err != nil {
		return email.Message{}, err
	}
	return email.Message{
		To:       n.cfg.AdminEmail,
		Subject:  fmt.Sprintf("Portfolio contact: %s", msg.Subject),
		HTMLBody: buf.String(),
	}, nil
}

func (n *Notifier) buildAutoReply(msg domain.ContactMessage) (email.Message, error) {
	senderName := n.cfg.SenderName
	if senderName == "" {
		senderName = "The portfolio team"
	}
	data := struct {
		Name         string
		Subject      string
		ReceivedAt   string
		PortfolioURL string
		WhatsAppURL  string
		LinkedInURL  string
		SenderName   string
	}{
		Name:         msg.Name,
		Subject:      msg.Subject,
		ReceivedAt:   formatTimestamp(msg.CreatedAt),
		PortfolioURL: n.cfg.PortfolioURL,
		WhatsAppURL:  n.cfg.WhatsAppURL,
		LinkedInURL:  n.cfg.LinkedInURL,
		SenderName:   senderName,
	}

	var buf bytes.Buffer
	if err := autoReplyTemplate.Execute(&buf, data); err != nil {
		return email.Message{}, err
	}
	return email.Message{
		To:       msg.Email,
		Subject:  fmt.Sprintf("Thanks for your message: %s", msg.Subject),
		HTMLBody: buf.String(),
	}, nil
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format("02 Jan 2006 15:04 MST")
}

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// splitParagraphs conserva los saltos de párrafo del mensaje original.
func splitParagraphs(message string) []string {
	normalized := strings.ReplaceAll(message, "\r\n", "\n")
	parts := paragraphBreak.Split(normalized, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) == 0 {
		paragraphs = append(paragraphs, strings.TrimSpace(message))
	}
	return paragraphs
}
