package bootstrap

import (
	"course-enrollment/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP gateway.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	QueueModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	EmbeddedWorkerModule,
)

// WorkerOnlyModule wires the standalone command consumer.
var WorkerOnlyModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	QueueModule,
	components.PersistenceModule,
	WorkerModule,
)
