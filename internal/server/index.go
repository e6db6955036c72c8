package server

// indexHTML is the single-page upload UI served at "/".
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Tip &amp; Hours Calculator</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; color: #1a202c; }
  h1 { font-size: 1.4rem; }
  fieldset { border: 1px solid #cbd5e0; border-radius: 6px; margin-bottom: 1rem; }
  table { border-collapse: collapse; margin-top: 1rem; width: 100%; }
  th, td { border: 1px solid #cbd5e0; padding: 0.4rem 0.8rem; text-align: left; }
  th { background: #e2e8f0; }
  .warn { color: #b7791f; }
  .error { color: #c53030; }
</style>
</head>
<body>
<h1>Tip &amp; Hours Calculator</h1>
<p>Upload tips/sales spreadsheets and an optional clock (timesheet) export.
Files are sorted automatically; tips are split per day in proportion to hours
worked.</p>

<fieldset>
<legend>Distribute tips</legend>
<form id="form">
  <input type="file" id="files" multiple accept=".csv,.xlsx,.xls">
  <button type="submit">Distribute</button>
</form>
</fieldset>

<div id="out"></div>

<script>
document.getElementById('form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const out = document.getElementById('out');
  const files = document.getElementById('files').files;
  if (!files.length) { out.innerHTML = '<p class="error">Choose at least one file.</p>'; return; }

  const body = new FormData();
  for (const f of files) body.append('files', f);

  out.textContent = 'Working...';
  const resp = await fetch('/api/distribute', { method: 'POST', body });
  const data = await resp.json();
  if (!resp.ok) { out.innerHTML = '<p class="error">' + data.error + '</p>'; return; }

  const res = data.result;
  let html = '<p>Mode: <b>' + res.mode + '</b> &middot; days: ' + res.dates +
    ' &middot; employees: ' + res.employees + '</p>';
  for (const w of res.warnings || []) html += '<p class="warn">' + w + '</p>';
  html += '<table><tr><th>Employee Name</th><th>Total Tip Share</th></tr>';
  for (const r of res.rows) html += '<tr><td>' + r.employee + '</td><td>' + r.share.toFixed(2) + '</td></tr>';
  html += '</table>';
  html += '<p><a href="/api/runs/' + data.runId + '/download">Download xlsx</a></p>';
  out.innerHTML = html;
});
</script>
</body>
</html>
`
