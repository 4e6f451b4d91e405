package model

// NotificationKind selects the message template.
type NotificationKind string

const (
	NotificationWelcome        NotificationKind = "welcome"
	NotificationDonorAccepted  NotificationKind = "donor_accepted"
	NotificationNGOAccepted    NotificationKind = "ngo_accepted"
	NotificationDonorCompleted NotificationKind = "donor_completed"
	NotificationNGOCompleted   NotificationKind = "ngo_completed"
)

// Notification is an outbound email queued after a business event.
// Counterpart names the other party, e.g. the accepting NGO in a donor mail.
type Notification struct {
	Kind        NotificationKind
	To          string
	Recipient   string
	Counterpart string
	Donation    *Donation
}
