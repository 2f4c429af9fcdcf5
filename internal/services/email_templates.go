package services

const welcomeEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f0fdf4; margin: 0; padding: 20px; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border: 1px solid #bbf7d0; border-radius: 8px; }
.header { font-size: 24px; font-weight: bold; color: #15803d; margin-bottom: 15px; }
.content { padding: 30px; }
.button { display: inline-block; background-color: #15803d; color: #ffffff; padding: 12px 24px; border-radius: 5px; text-decoration: none; font-weight: bold; margin: 20px 0; }
.footer { margin-top: 20px; font-size: 12px; color: #6b7280; text-align: center; }
p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Welcome to House Hunt Kenya</h1>
    </div>
    <div class="content">
      <p>Hi %s,</p>
      <p>%s</p>
      <a class="button" href="%s">Get started</a>
    </div>
    <div class="footer">
      © %d House Hunt Kenya. All rights reserved.
    </div>
  </div>
</body>
</html>`

const passwordResetEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f0fdf4; margin: 0; padding: 20px; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border: 1px solid #bbf7d0; border-radius: 8px; }
.header { font-size: 24px; font-weight: bold; color: #15803d; margin-bottom: 15px; }
.content { padding: 30px; }
.button { display: inline-block; background-color: #15803d; color: #ffffff; padding: 12px 24px; border-radius: 5px; text-decoration: none; font-weight: bold; margin: 20px 0; }
.footer { margin-top: 20px; font-size: 12px; color: #6b7280; text-align: center; }
p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Password Reset</h1>
    </div>
    <div class="content">
      <p>Hi %s,</p>
      <p>We received a request to reset your password. Click the button below to choose a new one. This link expires in 1 hour.</p>
      <a class="button" href="%s">Reset password</a>
      <p>If you did not request this, you can safely ignore this email.</p>
    </div>
    <div class="footer">
      © %d House Hunt Kenya. All rights reserved.
    </div>
  </div>
</body>
</html>`

const paymentConfirmationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f0fdf4; margin: 0; padding: 20px; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border: 1px solid #bbf7d0; border-radius: 8px; }
.header { font-size: 24px; font-weight: bold; color: #15803d; margin-bottom: 15px; }
.content { padding: 30px; }
.amount { font-size: 28px; font-weight: bold; color: #15803d; }
.footer { margin-top: 20px; font-size: 12px; color: #6b7280; text-align: center; }
p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Payment Received</h1>
    </div>
    <div class="content">
      <p>Hi %s,</p>
      <p>%s</p>
      <p class="amount">KES %.2f</p>
      <p>Reference: %s</p>
    </div>
    <div class="footer">
      © %d House Hunt Kenya. All rights reserved.
    </div>
  </div>
</body>
</html>`
