package notify

import (
	"embed"
	"fmt"
	"portfolio/models"
	"strings"

	"github.com/osteele/liquid"
)

//go:embed templates/*.liquid
var templateFS embed.FS

const receivedAtLayout = "02 Jan 2006 15:04 MST"

// Renderer turns a stored contact message into notification content.
// Templates are parsed once; rendering is safe for concurrent use.
type Renderer struct {
	siteName string
	subject  *liquid.Template
	text     *liquid.Template
	html     *liquid.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer(siteName string) (*Renderer, error) {
	engine := liquid.NewEngine()

	parse := func(name string) (*liquid.Template, error) {
		src, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		tpl, serr := engine.ParseTemplate(src)
		if serr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, serr)
		}
		return tpl, nil
	}

	r := &Renderer{siteName: siteName}
	var err error
	if r.subject, err = parse("subject.liquid"); err != nil {
		return nil, err
	}
	if r.text, err = parse("body.txt.liquid"); err != nil {
		return nil, err
	}
	if r.html, err = parse("body.html.liquid"); err != nil {
		return nil, err
	}
	return r, nil
}

// Render builds the subject line and both bodies for msg.
func (r *Renderer) Render(msg models.ContactMessage) (Message, error) {
	bindings := liquid.Bindings{
		"site_name":   r.siteName,
		"name":        msg.FullName(),
		"first_name":  msg.FirstName,
		"last_name":   msg.LastName,
		"email":       msg.Email,
		"phone":       msg.Phone,
		"subject":     msg.Subject,
		"message":     msg.Message,
		"received_at": msg.CreatedAt.UTC().Format(receivedAtLayout),
	}

	subject, serr := r.subject.RenderString(bindings)
	if serr != nil {
		return Message{}, fmt.Errorf("render subject: %w", serr)
	}
	text, serr := r.text.RenderString(bindings)
	if serr != nil {
		return Message{}, fmt.Errorf("render text body: %w", serr)
	}
	html, serr := r.html.RenderString(bindings)
	if serr != nil {
		return Message{}, fmt.Errorf("render html body: %w", serr)
	}

	return Message{
		Contact: msg,
		Subject: strings.Join(strings.Fields(subject), " "),
		Text:    text,
		HTML:    html,
	}, nil
}
