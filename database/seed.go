package database

import (
	"log"
	"strings"
	"time"

	"coursehub/config"
	"coursehub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedData populates the database with a default admin account and sample
// records on first run. Runs only when the instructors table is empty.
func seedData(db *gorm.DB) {
	var count int64
	db.Model(&models.Instructor{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding sample data...")

	instructors := []models.Instructor{
		{FullName: "Alice Nguyen", Email: "alice.nguyen@coursehub.local", Phone: "0901234567", Specialization: "Java Programming", Bio: "Instructor with 10 years of experience"},
		{FullName: "Brian Tran", Email: "brian.tran@coursehub.local", Phone: "0902345678", Specialization: "Web Development", Bio: "Full-stack web specialist"},
		{FullName: "Carol Le", Email: "carol.le@coursehub.local", Phone: "0903456789", Specialization: "Data Science", Bio: "PhD in Data Science"},
		{FullName: "David Pham", Email: "david.pham@coursehub.local", Phone: "0904567890", Specialization: "Mobile Development", Bio: "Mobile app development expert"},
	}
	if err := db.Create(&instructors).Error; err != nil {
		log.Printf("Error seeding instructors: %v", err)
		return
	}

	courses := []models.Course{
		{CourseName: "Java Fundamentals", CourseCode: "JAVA101", Description: "Java from basics to advanced", InstructorID: &instructors[0].ID, DurationWeeks: 12, Price: 2500000, MaxStudents: 30, Status: models.CourseActive},
		{CourseName: "Web Development with Spring Boot", CourseCode: "WEB201", Description: "Building web applications with Spring Boot", InstructorID: &instructors[1].ID, DurationWeeks: 16, Price: 3500000, MaxStudents: 25, Status: models.CourseActive},
		{CourseName: "Python for Data Science", CourseCode: "DS301", Description: "Data analysis with Python", InstructorID: &instructors[2].ID, DurationWeeks: 14, Price: 4000000, MaxStudents: 20, Status: models.CourseActive},
		{CourseName: "Android App Development", CourseCode: "MOB401", Description: "Android programming from scratch", InstructorID: &instructors[3].ID, DurationWeeks: 18, Price: 4500000, MaxStudents: 15, Status: models.CourseActive},
		{CourseName: "JavaScript and React", CourseCode: "WEB301", Description: "Building modern web interfaces", InstructorID: &instructors[1].ID, DurationWeeks: 10, Price: 3000000, MaxStudents: 30, Status: models.CourseActive},
	}
	if err := db.Create(&courses).Error; err != nil {
		log.Printf("Error seeding courses: %v", err)
		return
	}

	now := time.Now()
	students := []models.Student{
		{FullName: "Minh Hoang", Email: "minh.hoang@student.local", Phone: "0911111111", Address: "Hanoi", EnrollmentDate: &now},
		{FullName: "Lan Do", Email: "lan.do@student.local", Phone: "0922222222", Address: "Ho Chi Minh City", EnrollmentDate: &now},
		{FullName: "Nam Vu", Email: "nam.vu@student.local", Phone: "0933333333", Address: "Da Nang", EnrollmentDate: &now},
		{FullName: "Hoa Bui", Email: "hoa.bui@student.local", Phone: "0944444444", Address: "Hai Phong", EnrollmentDate: &now},
		{FullName: "Tuan Dang", Email: "tuan.dang@student.local", Phone: "0955555555", Address: "Can Tho", EnrollmentDate: &now},
	}
	if err := db.Create(&students).Error; err != nil {
		log.Printf("Error seeding students: %v", err)
		return
	}

	grade := 8.5
	enrollments := []models.Enrollment{
		{StudentID: students[0].ID, CourseID: courses[0].ID, EnrollmentDate: &now, CompletionStatus: models.CompletionCompleted, Grade: &grade, PaymentStatus: models.PaymentPaid},
		{StudentID: students[0].ID, CourseID: courses[1].ID, EnrollmentDate: &now, CompletionStatus: models.CompletionInProgress, PaymentStatus: models.PaymentPaid},
		{StudentID: students[1].ID, CourseID: courses[0].ID, EnrollmentDate: &now, CompletionStatus: models.CompletionInProgress, PaymentStatus: models.PaymentPaid},
		{StudentID: students[1].ID, CourseID: courses[2].ID, EnrollmentDate: &now, CompletionStatus: models.CompletionEnrolled, PaymentStatus: models.PaymentPending},
		{StudentID: students[2].ID, CourseID: courses[3].ID, EnrollmentDate: &now, CompletionStatus: models.CompletionInProgress, PaymentStatus: models.PaymentPaid},
	}
	if err := db.Create(&enrollments).Error; err != nil {
		log.Printf("Error seeding enrollments: %v", err)
	}

	seedStudentUsers(db, students)
	seedAdminUser(db)

	log.Println("Sample data seeded.")
}

// seedStudentUsers creates login accounts for the seeded students. The
// username is the local part of the student's email.
func seedStudentUsers(db *gorm.DB, students []models.Student) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("student123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing student password: %v", err)
		return
	}

	for _, student := range students {
		username := student.Email
		if at := strings.Index(student.Email, "@"); at > 0 {
			username = student.Email[:at]
		}
		user := models.User{
			Username:    username,
			Password:    string(hashed),
			Email:       student.Email,
			Role:        models.RoleStudent,
			ReferenceID: student.ID,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error seeding student user %s: %v", username, err)
		}
	}
}

// seedAdminUser creates the default admin account if no admin exists.
func seedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Username:    config.AppConfig.AdminUsername,
		Password:    string(hashed),
		Email:       config.AppConfig.AdminEmail,
		Role:        models.RoleAdmin,
		ReferenceID: 0,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}

	log.Printf("Default admin account created: %s", admin.Username)
}
