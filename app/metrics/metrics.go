package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OptionUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menu_option_upserts_total",
		Help: "The total number of option create-or-update operations",
	})

	CategoryUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menu_category_upserts_total",
		Help: "The total number of category create-or-update operations",
	})

	ImageUploads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menu_image_uploads_total",
		Help: "The total number of completed image uploads",
	})

	ImageUploadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menu_image_upload_failures_total",
		Help: "The total number of failed image uploads",
	})
)
