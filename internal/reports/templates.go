package reports

// dashboardTemplate is the page skeleton. Chart fragments arrive fully
// rendered; the template only lays them out and attaches the comment
// sections and forms.
const dashboardTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 30px; background: #f5f5f5; }
        h1 { text-align: center; color: #333; }
        .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 24px; }
        .section { background: white; padding: 20px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .blurb { color: #444; padding: 8px 10px; border-radius: 5px; text-align: center; }
        .chart-error { background: #fff3cd; padding: 15px; border-radius: 5px; border-left: 4px solid #ffc107; }
        .comments { margin-top: 12px; border-top: 1px solid #eee; padding-top: 10px; }
        .comments h4 { color: #2e7d32; margin: 4px 0; }
        .comment { margin: 4px 0; }
        .comment .user { font-weight: bold; }
        .auth { background: white; padding: 16px 20px; border-radius: 10px; margin-bottom: 24px; }
        form.inline input, form.inline textarea { margin: 4px; }
    </style>
</head>
<body>
    <h1>🌍 Temperature and CO2 Emission Trends in Africa</h1>
    <div class="auth">
        <details>
            <summary>Register (optional)</summary>
            <form class="inline" method="post" action="/api/register">
                <input name="email" placeholder="Enter Your Email">
                <input name="username" placeholder="Enter Your Username">
                <input name="password" type="password" placeholder="Enter Password">
                <input name="confirm_password" type="password" placeholder="Confirm Password">
                <button type="submit">Register</button>
            </form>
        </details>
        <details>
            <summary>Login (optional)</summary>
            <form class="inline" method="post" action="/api/login">
                <input name="email" placeholder="Enter Your Email">
                <input name="password" type="password" placeholder="Enter Password">
                <button type="submit">Login</button>
            </form>
        </details>
    </div>
    <div class="grid">
    {{range .Sections}}
        <div class="section" id="{{.Tag}}">
            {{if .Err}}
                <div class="chart-error">{{.Err}}</div>
            {{else}}
                {{.Chart}}
            {{end}}
            <div class="blurb">{{.Blurb}}</div>
            <div class="comments">
                {{if .Comments}}<h4>Comments</h4>{{end}}
                {{range .Comments}}
                    <div class="comment"><span class="user">{{.Username}}:</span> {{.Comment}}</div>
                {{end}}
                <form class="inline" method="post" action="/api/comments">
                    <input type="hidden" name="chart_tag" value="{{.Tag}}">
                    <textarea name="comment" placeholder="Add your comment"></textarea>
                    <button type="submit">Submit</button>
                </form>
            </div>
        </div>
    {{end}}
    </div>
</body>
</html>`
