package noteboard

import (
	"noteboard-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("noteboard.lib.scrapers.noteboard")
