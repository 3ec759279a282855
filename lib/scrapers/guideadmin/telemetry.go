package guideadmin

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("scrapers/guideadmin")
