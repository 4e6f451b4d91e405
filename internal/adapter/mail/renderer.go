package mail

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// ErrUnknownKind is returned for notifications without a template.
var ErrUnknownKind = errors.New("unknown notification kind")

var subjects = map[model.NotificationKind]string{
	model.NotificationDonorAccepted:  "Your Food Donation Has Been Accepted",
	model.NotificationNGOAccepted:    "Food Donation Acceptance Confirmation",
	model.NotificationDonorCompleted: "Your Food Donation Has Been Completed",
	model.NotificationNGOCompleted:   "Food Donation Completion Confirmation",
}

// Message is a rendered email ready for a Sender.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Renderer turns notifications into HTML mail using embedded templates.
type Renderer struct {
	templates map[model.NotificationKind]*template.Template
}

type view struct {
	model.Notification
	Title string
}

// NewRenderer parses all templates up front.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("parse mail layout: %w", err)
	}

	r := &Renderer{templates: make(map[model.NotificationKind]*template.Template, len(contents))}
	for kind, content := range contents {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone mail layout: %w", err)
		}
		if _, err := clone.Parse(content); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", kind, err)
		}
		r.templates[model.NotificationKind(kind)] = clone
	}
	return r, nil
}

// Subject returns the subject line used for a notification.
func Subject(n model.Notification) string {
	if n.Kind == model.NotificationWelcome {
		return "Welcome " + n.Recipient
	}
	return subjects[n.Kind]
}

// Render builds the message for n. Donation notifications require n.Donation.
func (r *Renderer) Render(n model.Notification) (Message, error) {
	tmpl, ok := r.templates[n.Kind]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
	if n.Kind != model.NotificationWelcome && n.Donation == nil {
		return Message{}, fmt.Errorf("%s notification without donation", n.Kind)
	}

	subject := Subject(n)
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", view{Notification: n, Title: subject}); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", n.Kind, err)
	}
	return Message{To: n.To, Subject: subject, HTML: buf.String()}, nil
}
