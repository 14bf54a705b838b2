package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"coursehub/config"
)

// SendEmail sends an HTML email through the configured SMTP account. It is a
// no-op when no sender is configured, so local development works without SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" {
		log.Printf("Email sending skipped (no EMAIL_SENDER configured): %s", subject)
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CourseHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A5C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A5C; line-height: 1.6; }
			.content h2 { color: #1B3A5C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5C8AB8; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSEHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; CourseHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail sends the post-registration welcome mail to a new student.
func SendWelcomeEmail(email, fullName string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your student account has been created. You can now browse courses
		and enroll during any active registration period.</p>
		<div class="info-box">Log in with your username to get started.</div>`, fullName)

	return SendEmail([]string{email}, "Welcome to CourseHub", getEmailTemplate("Welcome!", body))
}

// SendAnnouncementEmail notifies an enrolled student about an urgent course
// announcement.
func SendAnnouncementEmail(email, courseName, title, content string) error {
	body := fmt.Sprintf(`
		<p>An urgent announcement was posted in <b>%s</b>:</p>
		<div class="info-box"><b>%s</b><br>%s</div>`, courseName, title, content)

	return SendEmail([]string{email}, "Urgent announcement: "+courseName, getEmailTemplate(title, body))
}
