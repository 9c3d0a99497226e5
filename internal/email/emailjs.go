package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// OrderEmail параметры письма о новом заказе
type OrderEmail struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerDistrict string
	CustomerComment  string
	OrderItems       string
	OrderTotal       string
}

// ContactEmail параметры письма с формы обратной связи
type ContactEmail struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Mailer две операции уведомления: заказ и обратная связь
type Mailer interface {
	SendOrder(ctx context.Context, p OrderEmail) error
	SendContact(ctx context.Context, p ContactEmail) error
}

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Config реквизиты EmailJS: сервис, шаблоны, публичный ключ и
// фиксированный адрес получателя
type Config struct {
	ServiceID         string
	OrderTemplateID   string
	ContactTemplateID string
	PublicKey         string
	ToEmail           string
	Endpoint          string
}

// Client клиент REST API EmailJS
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: 15 * time.Second}}
}

var _ Mailer = (*Client)(nil)

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// SendOrder отправляет уведомление о заказе. Значения по умолчанию и
// имена параметров совпадают с шаблоном письма
func (c *Client) SendOrder(ctx context.Context, p OrderEmail) error {
	email := p.CustomerEmail
	if email == "" {
		email = "Non fourni"
	}
	comment := p.CustomerComment
	if comment == "" {
		comment = "Aucun commentaire"
	}
	return c.send(ctx, c.cfg.OrderTemplateID, map[string]string{
		"to_email":          c.cfg.ToEmail,
		"customer_name":     p.CustomerName,
		"customer_email":    email,
		"customer_phone":    p.CustomerPhone,
		"customer_district": p.CustomerDistrict,
		"customer_comment":  comment,
		"order_items":       stripBlankLines(p.OrderItems),
		"order_total":       p.OrderTotal,
	})
}

func (c *Client) SendContact(ctx context.Context, p ContactEmail) error {
	return c.send(ctx, c.cfg.ContactTemplateID, map[string]string{
		"from_name":  p.Name,
		"from_email": p.Email,
		"phone":      p.Phone,
		"message":    p.Message,
		"to_email":   c.cfg.ToEmail,
	})
}

func (c *Client) send(ctx context.Context, templateID string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

// stripBlankLines убирает пустые строки из текстового блока позиций
func stripBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// LogMailer заглушка для запуска без реквизитов EmailJS: пишет письма в лог
type LogMailer struct{ logger *log.Logger }

func NewLogMailer(logger *log.Logger) *LogMailer { return &LogMailer{logger: logger} }

var _ Mailer = (*LogMailer)(nil)

func (m *LogMailer) SendOrder(ctx context.Context, p OrderEmail) error {
	m.logger.Printf("order email (dry run): %s / %s / total %s", p.CustomerName, p.CustomerPhone, p.OrderTotal)
	return nil
}

func (m *LogMailer) SendContact(ctx context.Context, p ContactEmail) error {
	m.logger.Printf("contact email (dry run): %s <%s>", p.Name, p.Email)
	return nil
}
