package api

import (
	"net/http"

	"purelift/server/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	routineService service.RoutineService,
	workoutService service.WorkoutService,
	dashboardService service.DashboardService,
	settingsService service.SettingsService,
	exportService service.ExportService,
) {

	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	routineHandler := NewRoutineHandler(routineService)
	workoutHandler := NewWorkoutHandler(workoutService)
	dashboardHandler := NewDashboardHandler(dashboardService)
	settingsHandler := NewSettingsHandler(settingsService)
	exportHandler := NewExportHandler(exportService)
	bootstrapHandler := NewBootstrapHandler(exerciseService, settingsService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		protected.GET("/bootstrap", bootstrapHandler.Bootstrap)

		// --- Exercise Catalog ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.GetExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("/:id/alternatives", exerciseHandler.GetAlternatives)
			exerciseGroup.GET("/:id/tips", exerciseHandler.GetFormTips)
		}

		// --- Routines ---
		routineGroup := protected.Group("/routines")
		{
			routineGroup.GET("", routineHandler.GetRoutines)
			routineGroup.POST("", routineHandler.CreateRoutine)
			routineGroup.POST("/generate", routineHandler.GenerateRoutine)
			routineGroup.PUT("/:id", routineHandler.UpdateRoutine)
			routineGroup.DELETE("/:id", routineHandler.DeleteRoutine)
		}

		// --- Live Session ---
		sessionGroup := protected.Group("/session")
		{
			sessionGroup.POST("/start", workoutHandler.StartSession)
			sessionGroup.GET("", workoutHandler.GetSession)
			sessionGroup.PATCH("/sets/:setId", workoutHandler.UpdateSet)
			sessionGroup.POST("/sets/:setId/toggle", workoutHandler.ToggleSet)
			sessionGroup.POST("/exercises", workoutHandler.AddExercise)
			sessionGroup.POST("/swap", workoutHandler.SwapExercise)
			sessionGroup.POST("/finish", workoutHandler.FinishSession)
			sessionGroup.DELETE("", workoutHandler.AbandonSession)
		}

		// --- Dashboard ---
		dashboardGroup := protected.Group("/dashboard")
		{
			dashboardGroup.GET("/volume", dashboardHandler.GetWeeklyVolume)
			dashboardGroup.GET("/insight", dashboardHandler.GetCoachInsight)
		}

		// --- Settings & Export ---
		protected.GET("/settings", settingsHandler.GetSettings)
		protected.PUT("/settings", settingsHandler.UpdateSettings)
		protected.POST("/export", exportHandler.ExportData)
	}
}
