package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/controllers"
	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/middleware"
)

// SetupRouter configures all application routes. Reads are open to any
// authenticated role; writes on money and attendance are restricted to the
// roles that own those workflows.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	programController *controllers.ProgramController,
	facultyController *controllers.FacultyController,
	subjectController *controllers.SubjectController,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	feeController *controllers.FeeController,
	examController *controllers.ExamController,
	timetableController *controllers.TimetableController,
	announcementController *controllers.AnnouncementController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/user", authController.GetCurrentUser)

		// User management is admin territory.
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			users.PUT("/:id", authController.UpdateUser)
		}

		programs := authenticated.Group("/programs")
		{
			programs.GET("", programController.GetAllPrograms)
			programs.GET("/:id", programController.GetProgramByID)
			programs.POST("", programController.CreateProgram)
			programs.PUT("/:id", programController.UpdateProgram)
			programs.DELETE("/:id", programController.DeleteProgram)
		}

		classes := authenticated.Group("/classes")
		{
			classes.GET("", programController.GetAllClasses)
			classes.GET("/:id", programController.GetClassByID)
			classes.POST("", programController.CreateClass)
			classes.PUT("/:id", programController.UpdateClass)
			classes.DELETE("/:id", programController.DeleteClass)
		}

		sections := authenticated.Group("/sections")
		{
			sections.GET("", programController.GetAllSections)
			sections.GET("/:id", programController.GetSectionByID)
			sections.POST("", programController.CreateSection)
			sections.PUT("/:id", programController.UpdateSection)
			sections.DELETE("/:id", programController.DeleteSection)
		}

		faculty := authenticated.Group("/faculty")
		{
			faculty.GET("", facultyController.GetAllFaculty)
			faculty.GET("/:id", facultyController.GetFacultyByID)
			faculty.POST("", facultyController.CreateFaculty)
			faculty.PUT("/:id", facultyController.UpdateFaculty)
			faculty.DELETE("/:id", facultyController.DeleteFaculty)
		}

		facultySubjects := authenticated.Group("/faculty-subjects")
		{
			facultySubjects.GET("", facultyController.GetAssignments)
			facultySubjects.POST("", facultyController.CreateAssignment)
			facultySubjects.DELETE("/:id", facultyController.DeleteAssignment)
		}

		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.GetAllSubjects)
			subjects.GET("/:id", subjectController.GetSubjectByID)
			subjects.POST("", subjectController.CreateSubject)
			subjects.PUT("/:id", subjectController.UpdateSubject)
			subjects.DELETE("/:id", subjectController.DeleteSubject)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.GET("", attendanceController.GetAllAttendance)

			// Recording attendance belongs to teaching staff.
			attendanceWrites := attendance.Group("")
			attendanceWrites.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
			{
				attendanceWrites.POST("", attendanceController.CreateAttendance)
				attendanceWrites.PUT("/:id", attendanceController.UpdateAttendance)
			}
		}

		feeStructures := authenticated.Group("/fee-structures")
		{
			feeStructures.GET("", feeController.GetFeeStructures)
			feeStructures.GET("/:id", feeController.GetFeeStructureByID)

			feeStructureWrites := feeStructures.Group("")
			feeStructureWrites.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleAccountant))
			{
				feeStructureWrites.POST("", feeController.CreateFeeStructure)
			}
		}

		fees := authenticated.Group("/fees")
		{
			fees.GET("", feeController.GetAllFees)
			fees.GET("/:id", feeController.GetFeeByID)

			// Issuing and settling challans belongs to accounts staff.
			feeWrites := fees.Group("")
			feeWrites.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleAccountant))
			{
				feeWrites.POST("", feeController.CreateFee)
				feeWrites.PUT("/:id", feeController.UpdateFee)
			}
		}

		exams := authenticated.Group("/exams")
		{
			exams.GET("", examController.GetAllExams)
			exams.GET("/:id", examController.GetExamByID)
			exams.POST("", examController.CreateExam)
		}

		results := authenticated.Group("/results")
		{
			results.GET("", examController.GetResults)

			resultWrites := results.Group("")
			resultWrites.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
			{
				resultWrites.POST("", examController.CreateResult)
			}
		}

		timetable := authenticated.Group("/timetable")
		{
			timetable.GET("", timetableController.GetAllEntries)
			timetable.GET("/:id", timetableController.GetEntryByID)
			timetable.POST("", timetableController.CreateEntry)
			timetable.PUT("/:id", timetableController.UpdateEntry)
			timetable.DELETE("/:id", timetableController.DeleteEntry)
		}

		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.GetAllAnnouncements)
			announcements.GET("/:id", announcementController.GetAnnouncementByID)
			announcements.POST("", announcementController.CreateAnnouncement)
			announcements.PUT("/:id", announcementController.UpdateAnnouncement)
			announcements.DELETE("/:id", announcementController.DeleteAnnouncement)
		}

		authenticated.GET("/dashboard/stats", dashboardController.GetStats)
	}
}
