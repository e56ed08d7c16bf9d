package service

import "time"

// ResourceKind - тип ресурса, к которому применяется политика хранения
type ResourceKind string

const (
	KindIncident        ResourceKind = "incident"
	KindChatMessage     ResourceKind = "chat_message"
	KindPresence        ResourceKind = "presence"
	KindStreetHighlight ResourceKind = "street_highlight"
	KindContent         ResourceKind = "content"
)

const (
	IncidentRetention    = 6 * time.Hour
	ChatMessageRetention = 24 * time.Hour
	PresenceRetention    = 2 * time.Minute
)

// RetentionPolicy описывает максимальный возраст записей по типам ресурсов.
// Типы без окна (уличные отметки, контент) не удаляются по времени.
type RetentionPolicy struct {
	windows map[ResourceKind]time.Duration
}

// DefaultRetentionPolicy возвращает стандартные окна хранения
func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{
		windows: map[ResourceKind]time.Duration{
			KindIncident:    IncidentRetention,
			KindChatMessage: ChatMessageRetention,
			KindPresence:    PresenceRetention,
		},
	}
}

// MaxAge возвращает окно хранения; false означает, что тип не истекает
func (p RetentionPolicy) MaxAge(kind ResourceKind) (time.Duration, bool) {
	d, ok := p.windows[kind]
	return d, ok && d > 0
}

// Cutoff возвращает момент, записи старше которого подлежат удалению
func (p RetentionPolicy) Cutoff(kind ResourceKind, now time.Time) (time.Time, bool) {
	d, ok := p.MaxAge(kind)
	if !ok {
		return time.Time{}, false
	}
	return now.Add(-d), true
}

// Expired сообщает, превысил ли возраст записи окно хранения
func (p RetentionPolicy) Expired(kind ResourceKind, ts, now time.Time) bool {
	d, ok := p.MaxAge(kind)
	if !ok {
		return false
	}
	return now.Sub(ts) > d
}
