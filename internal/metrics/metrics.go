package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	LikesToggled = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "portal_likes_toggled_total", Help: "Total like toggle operations"},
	)
	ViewsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "portal_views_recorded_total", Help: "Total project views recorded"},
	)
	ViewsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "portal_views_dropped_total", Help: "Total view records dropped on storage error"},
	)
	FeedbackSaved = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "portal_feedback_saved_total", Help: "Total judge feedback upserts"},
	)
	LeaderboardQueries = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "portal_leaderboard_queries_total", Help: "Total leaderboard computations"},
	)
)

func Register() {
	prometheus.MustRegister(LikesToggled, ViewsRecorded, ViewsDropped, FeedbackSaved, LeaderboardQueries)
}
