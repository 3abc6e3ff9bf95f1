package templates

import (
	"fmt"
	"html"
)

// RenderWelcomeEmail generates branded HTML for the email sent after signup.
// name is HTML-escaped.
func RenderWelcomeEmail(name, baseURL string) string {
	safeName := html.EscapeString(name)
	if baseURL == "" {
		baseURL = "https://petbazaar.app"
	}
	safeURL := html.EscapeString(baseURL)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Welcome to PetBazaar</title>
  <style type="text/css">
    body { font-family: Arial, Helvetica, sans-serif; margin: 0; padding: 0; background-color: #fdf6ec; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background-color: #f59e0b; padding: 32px 24px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 22px; }
    .content { padding: 32px 24px; color: #374151; line-height: 1.6; font-size: 15px; }
    .button { display: inline-block; padding: 12px 20px; background-color: #f59e0b; color: #fff; text-decoration: none; border-radius: 6px; }
    .footer { padding: 24px; text-align: center; color: #9ca3af; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Welcome to PetBazaar, %s!</h1>
    </div>
    <div class="content">
      <p>Your account is ready. Browse pets looking for a home, list your own for sale or adoption and chat with other owners.</p>
      <p><a class="button" href="%s">Visit PetBazaar</a></p>
    </div>
    <div class="footer">
      <p>You are receiving this email because you signed up at PetBazaar.</p>
    </div>
  </div>
</body>
</html>`, safeName, safeURL)
}
