package mail

const layout = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9fafb; padding: 20px; color: #333;">
<div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 10px; padding: 30px;">
{{template "content" .}}
<hr style="margin-top: 40px; border: none; border-top: 1px solid #ddd;">
<p style="font-size: 12px; color: #777; text-align: center;">FoodBridge. This is an automated message, please do not reply.</p>
</div>
</body>
</html>{{end}}`

var contents = map[string]string{
	"welcome": `{{define "content"}}
<h2 style="color: #2E8B57;">Welcome to FoodBridge, thank you for joining us!</h2>
<p>Dear {{.Recipient}},</p>
<p>Thank you for joining <strong>FoodBridge</strong>. We are thrilled to have you as part of our mission to reduce food waste and fight hunger.</p>
<p>By being part of FoodBridge, you help connect surplus food to people in need through our network of donors and NGOs.</p>
<p><strong>Here is what you can look forward to:</strong></p>
<ul>
<li>Easy food donations and pickups through our platform.</li>
<li>A transparent system ensuring food reaches those who need it most.</li>
<li>Restaurant rewards for your contributions.</li>
</ul>
<p>Together, we can make sure no food goes to waste and no one sleeps hungry.</p>
<p style="margin-top: 30px;">Warm regards,<br><strong>The FoodBridge Team</strong></p>
{{end}}`,

	"donor_accepted": `{{define "content"}}
<h2>Your Food Donation Has Been Accepted!</h2>
<p>Dear {{.Recipient}},</p>
<p>Your food donation of {{.Donation.Quantity}} {{.Donation.FoodItem}} has been accepted by {{.Counterpart}} (NGO).</p>
<p>They will contact you at: {{.Donation.Phone}}</p>
<p>Donation Address: {{.Donation.Address}}</p>
{{with .Donation.ExpectedCompletionDate}}<p>Expected pickup by: {{.Format "Jan 2, 2006 15:04 MST"}}</p>{{end}}
<p>Thank you for making a difference!</p>
{{end}}`,

	"ngo_accepted": `{{define "content"}}
<h2>Food Donation Acceptance Confirmation</h2>
<p>Dear {{.Recipient}},</p>
<p>You have successfully accepted a food donation:</p>
<ul>
<li>Item: {{.Donation.FoodItem}}</li>
<li>Quantity: {{.Donation.Quantity}}</li>
<li>Donor Contact: {{.Donation.Phone}}</li>
<li>Pickup Address: {{.Donation.Address}}</li>
</ul>
<p>Please contact the donor to arrange pickup.</p>
{{end}}`,

	"donor_completed": `{{define "content"}}
<h2>Your Food Donation Has Been Successfully Completed!</h2>
<p>Dear {{.Recipient}},</p>
<p>Your food donation of {{.Donation.Quantity}} {{.Donation.FoodItem}} has been successfully completed by {{.Counterpart}} (NGO).</p>
<p>Thank you for your generous contribution to our community!</p>
<p>Want to donate again? Visit FoodBridge to make another donation.</p>
{{end}}`,

	"ngo_completed": `{{define "content"}}
<h2>Food Donation Successfully Completed</h2>
<p>Dear {{.Recipient}},</p>
<p>You have successfully completed the food donation:</p>
<ul>
<li>Item: {{.Donation.FoodItem}}</li>
<li>Quantity: {{.Donation.Quantity}}</li>
{{with .Donation.CompletedAt}}<li>Completion Date: {{.Format "Jan 2, 2006"}}</li>{{end}}
</ul>
<p>Thank you for your service to the community!</p>
{{end}}`,
}
