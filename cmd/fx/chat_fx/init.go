package chat_fx

import (
	"go.uber.org/fx"

	"easytrip/internal/api/controllers"
	"easytrip/internal/services"
)

var Module = fx.Provide(
	services.NewItineraryService,
	services.NewEditorService,
	services.NewChatService,
	controllers.NewChatController,
	controllers.NewItineraryController)
