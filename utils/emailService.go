package utils

import (
	"fmt"
	"net/smtp"

	"helpti/config"
)

// SendPasswordResetEmail mails a single-use reset token to the user.
func SendPasswordResetEmail(email, token string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	to := []string{email}

	subject := "Subject: Password Reset - HelpTI\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">HelpTI Password Reset</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Use the code below to reset your password:</p>
					<h1 style="text-align: center; color: #007bff; font-size: 24px; margin: 20px 0; word-break: break-all;">%s</h1>
					<p style="font-size: 14px; color: #999999; text-align: center;">This code expires in 30 minutes. Do not share it with anyone.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">If you did not request this, you can ignore this email.</p>
				</div>
			</body>
		</html>
	`, token)

	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message)
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}

	fmt.Println("Password reset email sent to", email)
	return nil
}

// SendTicketClosedEmail notifies the client that their ticket was resolved.
func SendTicketClosedEmail(email, clientName, ticketTitle, resolution string, ticketID uint) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	to := []string{email}

	subject := "Subject: Your Ticket Was Closed - HelpTI\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Ticket #%d Closed</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your support ticket has been resolved and closed:</p>
					<h3 style="text-align: center; color: #28a745; margin: 20px 0;">%s</h3>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Resolution:</p>
						<p style="font-size: 14px; color: #333333; margin: 0;">%s</p>
					</div>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">HelpTI Support Team</p>
				</div>
			</body>
		</html>
	`, ticketID, clientName, ticketTitle, resolution)

	message := []byte(subject + "\n" + body)
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message)
	if err != nil {
		fmt.Println("Error sending ticket closed email:", err)
		return err
	}

	fmt.Println("Ticket closed email sent to", email)
	return nil
}
