package service

import "fmt"

func magicLinkEmailTemplate(magicURL, appName string) (string, string) {
	subject := fmt.Sprintf("Sign in to %s", appName)
	body := fmt.Sprintf(`Click this link to sign in to your account:
%s

This link expires in 10 minutes and can only be used once.

If you didn't request this, ignore this email.

Best,
The %s Team`, magicURL, appName)

	return subject, body
}

func welcomeEmailTemplate(name, dashboardURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is active. Pick a career path, add your skills, and start
tracking your progress.

Get started: %s

If you have questions, reach out to our support team.

Best,
The %s Team`, name, dashboardURL, appName)

	return subject, body
}

func emailChangeVerificationTemplate(name, verifyURL, appName string) (string, string) {
	subject := fmt.Sprintf("Verify your new email for %s", appName)
	body := fmt.Sprintf(`Hi %s,

You requested to change your email address. Please verify your new email by clicking this link:
%s

This link expires in 24 hours.

If you didn't request this change, you can safely ignore this email.

Best,
The %s Team`, name, verifyURL, appName)

	return subject, body
}

func emailChangeNotificationTemplate(name, newEmail, appName string) (string, string) {
	subject := fmt.Sprintf("Email change requested for %s", appName)
	body := fmt.Sprintf(`Hi %s,

A request was made to change your email address to: %s

If this was you, please verify the new email address by clicking the link we sent to it.

If you didn't request this change, your account may be compromised. Please secure your account immediately by changing your password.

Best,
The %s Team`, name, newEmail, appName)

	return subject, body
}

func accountDeletedEmailTemplate(name, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s account has been deleted", appName)
	body := fmt.Sprintf(`Hi %s,

Your account has been permanently deleted from %s.

All your data, including your profile, portfolio, and wellness logs, has been removed from our systems.

If you didn't request this deletion, please contact our support team immediately.

Best,
The %s Team`, name, appName, appName)

	return subject, body
}

func wellnessFollowUpEmailTemplate(name, consultURL, supportEmail, appName string) (string, string) {
	subject := "Checking in on you"
	body := fmt.Sprintf(`Hi %s,

Thanks for completing your wellness check-in. Based on your recent
answers, we'd like to remind you that support is available.

You can book a session with a counselor here: %s

If you'd rather talk to someone right away, email us at %s.
You're not alone in this.

Warmly,
The %s Team`, name, consultURL, supportEmail, appName)

	return subject, body
}

func consultationConfirmedEmailTemplate(name, topic, schedule, appName string) (string, string) {
	subject := "Your consultation is confirmed"
	body := fmt.Sprintf(`Hi %s,

Your consultation has been confirmed.

Topic: %s
Schedule: %s

You'll receive a reminder before the session starts.

Best,
The %s Team`, name, topic, schedule, appName)

	return subject, body
}

func paymentReceiptEmailTemplate(name, orderID string, amount int64, appName string) (string, string) {
	subject := fmt.Sprintf("Payment received - %s", orderID)
	body := fmt.Sprintf(`Hi %s,

We've received your payment.

Order ID: %s
Amount: Rp %d

Thank you for using %s.

Best,
The %s Team`, name, orderID, amount, appName, appName)

	return subject, body
}
