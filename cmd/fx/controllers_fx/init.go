package controllers_fx

import (
	"go.uber.org/fx"

	"nutrikids/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewChildrenController),
	fx.Provide(controllers.NewDiaryController),
	fx.Provide(controllers.NewCoachController),
	fx.Provide(controllers.NewReferralController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewMealPlanController),
	fx.Provide(controllers.NewFoodsController),
	fx.Provide(controllers.NewNotificationController))
