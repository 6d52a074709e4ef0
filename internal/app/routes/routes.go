package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aisyah456/liblary-web/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
	majorController *controllers.MajorController,
	memberController *controllers.MemberController,
	clearanceController *controllers.ClearanceController,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	faculties := router.Group("/faculties")
	{
		faculties.GET("", facultyController.GetAllFaculties)
		faculties.GET("/:id", facultyController.GetFacultyByID)
		faculties.POST("", facultyController.CreateFaculty)
		faculties.PUT("/:id", facultyController.UpdateFaculty)
		faculties.DELETE("/:id", facultyController.DeleteFaculty)
	}

	majors := router.Group("/majors")
	{
		majors.GET("", majorController.GetAllMajors)
		majors.GET("/:id", majorController.GetMajorByID)
		majors.POST("", majorController.CreateMajor)
		majors.PUT("/:id", majorController.UpdateMajor)
		majors.DELETE("/:id", majorController.DeleteMajor)
	}

	// The member directory is read only. Member records are mastered by the
	// campus registration system.
	router.GET("/anggota", memberController.GetAllMembers)

	clearances := router.Group("/bebas_pustaka")
	{
		clearances.GET("", clearanceController.GetAllClearances)
		clearances.GET("/:id", clearanceController.GetClearanceByID)
		clearances.POST("", clearanceController.SubmitClearance)
		clearances.PUT("/:id", clearanceController.ReviewClearance)
		clearances.DELETE("/:id", clearanceController.DeleteClearance)
	}
}
