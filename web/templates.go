package web

import (
	"github.com/flosch/pongo2/v6"
)

var indexTemplate = pongo2.Must(pongo2.FromString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Verification</title>
</head>
<body>
    <h1>Member verification</h1>
    <p>If you were banned for setting off security flags, open the
       verification link you received in your direct messages.</p>
</body>
</html>`))

var verifyTemplate = pongo2.Must(pongo2.FromString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Verify your account</title>
    <script src="https://www.google.com/recaptcha/api.js" async defer></script>
    <script>
        function onSubmit() {
            var response = grecaptcha.getResponse();
            fetch('/verify/{{ token }}', {
                method: 'POST',
                headers: {'Content-Type': 'application/x-www-form-urlencoded'},
                body: 'g-recaptcha-response=' + encodeURIComponent(response)
            }).then(function (res) {
                document.getElementById('result').textContent = res.ok
                    ? 'Your ban has been lifted. You can rejoin the server now.'
                    : 'Verification failed. Try again or contact the server staff.';
            });
            return false;
        }
    </script>
</head>
<body>
    <h1>Verify your account</h1>
    <p>Complete the challenge below to lift the ban for <strong>{{ user_tag }}</strong>.</p>
    <form onsubmit="return onSubmit()">
        <div class="g-recaptcha" data-sitekey="{{ site_key }}"></div>
        <button type="submit">Verify</button>
    </form>
    <p id="result"></p>
</body>
</html>`))

var errorTemplate = pongo2.Must(pongo2.FromString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{ title }}</title>
</head>
<body>
    <h1>{{ title }}</h1>
    <p>{{ text }}</p>
</body>
</html>`))
