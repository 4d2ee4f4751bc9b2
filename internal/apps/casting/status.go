package casting

// Application lifecycle statuses. The common path is
// Nouveau → Présélectionné → Accepté | Refusé, with Refusé → Présélectionné
// as an explicit undo. Admin actions may force any known status; the store
// validates the value but does not enforce the transition graph. Walk-in
// registration inserts directly at Présélectionné.
const (
	StatusNew         = "Nouveau"
	StatusPreselected = "Présélectionné"
	StatusAccepted    = "Accepté"
	StatusRejected    = "Refusé"
)

// Statuses lists all known statuses in lifecycle order.
var Statuses = []string{StatusNew, StatusPreselected, StatusAccepted, StatusRejected}

// KnownStatus reports whether s is one of the lifecycle statuses.
func KnownStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}
