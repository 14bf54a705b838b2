package main

import (
	"log"

	"coursehub/config"
	"coursehub/database"
	announcementRoutes "coursehub/routers/announcementRoutes"
	assignmentRoutes "coursehub/routers/assignmentRoutes"
	authRoutes "coursehub/routers/authRoutes"
	courseRoutes "coursehub/routers/courseRoutes"
	dashboardRoutes "coursehub/routers/dashboardRoutes"
	enrollmentRoutes "coursehub/routers/enrollmentRoutes"
	instructorRoutes "coursehub/routers/instructorRoutes"
	periodRoutes "coursehub/routers/periodRoutes"
	studentRoutes "coursehub/routers/studentRoutes"
	submissionRoutes "coursehub/routers/submissionRoutes"
	userRoutes "coursehub/routers/userRoutes"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Submission attachments are served straight from disk
	app.Static("/uploads", "./uploads")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	assignmentRoutes.SetupAssignmentRoutes(app)
	submissionRoutes.SetupSubmissionRoutes(app)
	announcementRoutes.SetupAnnouncementRoutes(app)
	periodRoutes.SetupPeriodRoutes(app)
	userRoutes.SetupUserRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	utils.StartPeriodScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
