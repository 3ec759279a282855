package main

import (
	"context"

	"guidetrack-backend/cmd/guidetrack-cli/commands"
	"guidetrack-backend/lib/serviceutil"
	"guidetrack-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "guidetrack-cli")
	defer telemetry.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
