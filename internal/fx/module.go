package fx

import "go.uber.org/fx"

// AppModule reúne todos os módulos da aplicação
var AppModule = fx.Options(
	ConfigModule,
	DomainModule,
	MiddlewareModule,
	ServerModule,
)
