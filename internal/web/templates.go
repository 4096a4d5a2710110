package web

import "html/template"

func pageTemplates() *template.Template {
	return template.Must(template.New("").Parse(pagesHTML))
}

const pagesHTML = `
{{define "index"}}
<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>Quản lý Số Điện Thoại</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
.msg { background: #eef; padding: 0.5rem; margin-bottom: 1rem; }
form { margin-top: 1.5rem; }
input { margin-right: 0.5rem; }
</style>
</head>
<body>
<h1>📱 Danh sách số điện thoại</h1>
{{if .Msg}}<div class="msg">{{.Msg}}</div>{{end}}
{{if .Phones}}
<table>
<tr><th>Số điện thoại</th><th>Ngày gia hạn</th><th>Tài khoản</th></tr>
{{range .Phones}}
<tr>
<td><a href="/phone/{{.Number}}">{{.Number}}</a></td>
<td>{{.RenewalDate}}</td>
<td>{{len .Accounts}}/{{$.MaxAccounts}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>Không có số điện thoại nào trong danh sách.</p>
{{end}}
<form method="post" action="/add_phone">
<h2>Thêm số điện thoại</h2>
<input name="phone_number" placeholder="0912345678" required>
<input name="renewal_date" placeholder="DD/MM/YYYY" required>
<button type="submit">Thêm</button>
</form>
</body>
</html>
{{end}}

{{define "phone"}}
<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>{{.Phone.Number}}</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
.msg { background: #eef; padding: 0.5rem; margin-bottom: 1rem; }
form { margin-top: 1.5rem; }
input { margin-right: 0.5rem; }
</style>
</head>
<body>
<p><a href="/">← Quay lại</a></p>
<h1>📱 {{.Phone.Number}}</h1>
{{if .Msg}}<div class="msg">{{.Msg}}</div>{{end}}
<p>📅 Ngày gia hạn: {{.Phone.RenewalDate}}</p>
<h2>Tài khoản ({{len .Phone.Accounts}}/{{.MaxAccounts}})</h2>
{{if .Phone.Accounts}}
<table>
<tr><th>Tên tài khoản</th><th>Ngày gia hạn</th></tr>
{{range .Phone.Accounts}}
<tr><td>{{.Name}}</td><td>{{.RenewalDate}}</td></tr>
{{end}}
</table>
{{else}}
<p>Chưa có tài khoản nào.</p>
{{end}}
<form method="post" action="/add_account">
<h3>Thêm tài khoản</h3>
<input type="hidden" name="phone_number" value="{{.Phone.Number}}">
<input name="account_name" placeholder="Facebook" required>
<input name="renewal_date" placeholder="DD/MM/YYYY" required>
<button type="submit">Thêm</button>
</form>
</body>
</html>
{{end}}
`
