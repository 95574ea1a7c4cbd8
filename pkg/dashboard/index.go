package dashboard

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>supacheck</title>
<style>
  body { font-family: -apple-system, sans-serif; margin: 2rem auto; max-width: 860px; color: #222; }
  h1 { font-size: 1.4rem; }
  .cards { display: flex; gap: 1rem; }
  .card { flex: 1; border: 1px solid #ddd; border-radius: 8px; padding: 1rem; }
  .card h2 { margin-top: 0; font-size: 1rem; }
  .status { font-weight: bold; text-transform: uppercase; }
  .pass { color: #15803d; } .fail { color: #b91c1c; }
  .error { color: #b45309; } .pending { color: #6b7280; }
  table { width: 100%; border-collapse: collapse; margin-top: 1rem; font-size: 0.85rem; }
  th, td { border-bottom: 1px solid #eee; text-align: left; padding: 0.4rem; }
  button { padding: 0.5rem 1rem; margin-right: 0.5rem; }
</style>
</head>
<body>
<h1>supacheck &mdash; Supabase security compliance</h1>
<p>
  <button id="run">Run checks</button>
  <a href="/api/evidence/export?format=json">Export JSON</a>
  <a href="/api/evidence/export?format=csv">Export CSV</a>
  <button id="clear">Clear log</button>
</p>
<div class="cards">
  <div class="card"><h2>MFA coverage</h2><div id="mfa"></div></div>
  <div class="card"><h2>Row Level Security</h2><div id="rls"></div></div>
  <div class="card"><h2>Point-in-Time Recovery</h2><div id="pitr"></div></div>
</div>
<table>
  <thead><tr><th>Timestamp</th><th>Check</th><th>Status</th><th>Details</th></tr></thead>
  <tbody id="log"></tbody>
</table>
<script>
function renderCard(id, res) {
  var el = document.getElementById(id);
  el.innerHTML = '<span class="status ' + res.status + '">' + res.status + '</span><p>' +
    (res.message || '') + '</p>';
}
function renderResults(r) {
  renderCard('mfa', r.mfa); renderCard('rls', r.rls); renderCard('pitr', r.pitr);
}
function refreshLog() {
  fetch('/api/evidence').then(function (r) { return r.json(); }).then(function (entries) {
    var rows = entries.map(function (e) {
      return '<tr><td>' + e.timestamp + '</td><td>' + e.check + '</td><td>' +
        e.status + '</td><td>' + e.details + '</td></tr>';
    });
    document.getElementById('log').innerHTML = rows.join('');
  });
}
document.getElementById('run').addEventListener('click', function () {
  var btn = this;
  btn.disabled = true;
  fetch('/api/run', { method: 'POST' })
    .then(function (r) { return r.json(); })
    .then(function (r) { if (!r.error) { renderResults(r); } refreshLog(); })
    .finally(function () { btn.disabled = false; });
});
document.getElementById('clear').addEventListener('click', function () {
  if (!confirm('Clear the evidence log? This cannot be undone.')) { return; }
  fetch('/api/evidence?confirm=true', { method: 'DELETE' }).then(refreshLog);
});
fetch('/api/results').then(function (r) { return r.json(); }).then(renderResults);
refreshLog();
</script>
</body>
</html>
`
