package service

import (
	"strings"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/pkg/geo"
)

// ClusterRadiusMeters - максимальное расстояние между сообщениями одного кластера
const ClusterRadiusMeters = 500.0

// ClusterCount считает, сколько сообщений (включая новое) образуют кластер
// вокруг нового инцидента. Значение фиксируется при создании и не
// пересчитывается для более ранних инцидентов.
func ClusterCount(incident *models.Incident, candidates []*models.Incident, now time.Time, policy RetentionPolicy) int {
	count := 1
	origin := geo.Point{Lat: incident.Latitude, Lon: incident.Longitude}

	for _, c := range candidates {
		if c == nil || c.Category != incident.Category {
			continue
		}
		// окно кластеризации совпадает с окном хранения инцидентов
		if policy.Expired(KindIncident, c.Timestamp, now) {
			continue
		}
		if geo.Distance(origin, geo.Point{Lat: c.Latitude, Lon: c.Longitude}) <= ClusterRadiusMeters {
			count++
		}
	}
	return count
}

// IsVerified - инцидент считается подтвержденным, если указан хотя бы один контакт
func IsVerified(email, phone string) bool {
	return strings.TrimSpace(email) != "" || strings.TrimSpace(phone) != ""
}
