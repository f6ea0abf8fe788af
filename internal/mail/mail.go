package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gemstore/analytics-manager/internal/dependency"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_email_name"`
	ReplyTo   string `mapstructure:"reply_to"`
}

// Enabled reports whether the mailer has credentials and a sender.
func (c *Config) Enabled() bool {
	return c != nil && c.APIKey != "" && c.FromEmail != ""
}

type Mailer struct {
	cli       dependency.Sender
	from      *mail.Email
	c         *Config
	storeName string
	currency  string
	templates map[string]*template.Template
}

// New creates a sendgrid backed mailer. storeName and currency are used to
// render report mails.
func New(c *Config, storeName, currency string) (*Mailer, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("incomplete config: sendgrid api key is empty")
	}
	return newWithSender(c, sendgrid.NewSendClient(c.APIKey), storeName, currency)
}

func newWithSender(c *Config, cli dependency.Sender, storeName, currency string) (*Mailer, error) {
	if c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete config: from email %q name %q", c.FromEmail, c.FromName)
	}

	m := &Mailer{
		cli:       cli,
		from:      mail.NewEmail(c.FromName, c.FromEmail),
		c:         c,
		storeName: storeName,
		currency:  currency,
		templates: make(map[string]*template.Template),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		templatePath := filepath.Join(templateDir, entry.Name())

		tmpl, err := template.ParseFS(templatesFS, templatePath)
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}

		m.templates[entry.Name()] = tmpl
	}

	return nil
}

func (m *Mailer) render(tn string, data any) (string, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return "", fmt.Errorf("template not found: %v", tn)
	}
	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return "", fmt.Errorf("error executing template: %w", err)
	}
	return body.String(), nil
}

func (m *Mailer) send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.MailApiLimitReached
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}
	return nil
}
