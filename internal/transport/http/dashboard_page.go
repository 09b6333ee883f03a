package http

// pageHTML is the embedded dashboard page. It renders entirely from
// GET /api/dashboard and re-fetches on every filter change; charts
// are drawn with ECharts loaded from the jsdelivr CDN.
const pageHTML = `<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --muted: #6c757d; --accent: #0d6efd; --good: #28a745;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --muted: #adb5bd; --accent: #5b9aff; --good: #4caf50;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "Malgun Gothic", sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.filters { display: flex; flex-wrap: wrap; gap: .75rem; margin-bottom: 1rem; align-items: center; }
.filters select, .filters button { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; }
.filters label { font-size: .8125rem; color: var(--muted); }
.venue-box { display: flex; gap: .5rem; flex-wrap: wrap; font-size: .8125rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(140px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.card .value.best { color: var(--good); }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box.wide { grid-column: 1 / -1; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.chart { height: 320px; }
.info { color: var(--muted); font-size: .8125rem; padding: 2rem 0; text-align: center; }
.error { color: #dc3545; padding: 2rem; text-align: center; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
thead { position: sticky; top: 0; background: var(--card-bg); }
.toolbar { display: flex; justify-content: space-between; align-items: center; margin-bottom: .5rem; }
.toolbar a { color: var(--accent); font-size: .8125rem; }
.warnings { color: #fd7e14; font-size: .75rem; margin-bottom: .75rem; }
</style>
</head>
<body>
<header>
  <h1>&#9971; {{.Title}}</h1>
  <p>점수카드 CSV를 분석하여 내 점수와 트렌드를 시각화합니다. ({{.Version}})</p>
</header>

<div class="filters">
  <label for="player">선수 선택</label>
  <select id="player"></select>
  <label>구장 선택</label>
  <span id="venues" class="venue-box"></span>
  <button id="refresh">새로고침</button>
</div>
<div id="warnings" class="warnings"></div>

<div class="cards">
  <div class="card"><div class="value" id="m-rounds">-</div><div class="label">총 라운딩 횟수</div></div>
  <div class="card"><div class="value" id="m-mean">-</div><div class="label">평균 타수</div></div>
  <div class="card"><div class="value best" id="m-best">-</div><div class="label">최고 기록 (Best)</div></div>
  <div class="card"><div class="value" id="m-latest">-</div><div class="label">최근 점수</div></div>
</div>

<div class="charts">
  <div class="chart-box wide"><h3>&#128200; 날짜별 타수 변화 (낮을수록 좋음)</h3><div id="trend" class="chart"></div><div id="trend-info" class="info" hidden>표시할 데이터가 없습니다.</div></div>
  <div class="chart-box"><h3>&#128202; 구장별 평균 타수</h3><div id="avg" class="chart"></div><div id="avg-info" class="info" hidden>선수를 선택하면 구장별 평균이 표시됩니다.</div></div>
  <div class="chart-box"><h3>타수 분포 (일관성 확인)</h3><div id="box" class="chart"></div></div>
  <div class="chart-box wide">
    <div class="toolbar"><h3>&#128221; 상세 기록표</h3><a id="export" href="/api/export/csv">결과 CSV 다운로드</a></div>
    <table><thead><tr><th>날짜</th><th>구장</th><th>이름</th><th>총점</th></tr></thead><tbody id="rows"></tbody></table>
    <div id="rows-info" class="info" hidden>표시할 데이터가 없습니다.</div>
  </div>
</div>
<div id="fatal" class="error" hidden></div>

<script>
const ALL = "__all__";
const state = { player: null, venues: null, initialized: false };
const charts = {};

function chart(id) {
  if (!charts[id]) charts[id] = echarts.init(document.getElementById(id));
  return charts[id];
}

function query() {
  const params = new URLSearchParams();
  if (state.player && state.player !== ALL) params.set("player", state.player);
  if (state.venues) params.set("venues", state.venues.join(","));
  return params.toString();
}

async function load() {
  const q = query();
  const res = await fetch("/api/dashboard" + (q ? "?" + q : ""));
  if (!res.ok) {
    const body = await res.json().catch(() => null);
    const msg = body && body.error ? body.error.message : "dashboard request failed";
    document.getElementById("fatal").textContent = msg;
    document.getElementById("fatal").hidden = false;
    return;
  }
  document.getElementById("fatal").hidden = true;
  renderAll(await res.json());
}

function renderAll(d) {
  if (!state.initialized) {
    state.player = d.default_player || ALL;
    state.venues = null; // all venues selected
    initControls(d);
    state.initialized = true;
  }
  renderCards(d.summary);
  renderWarnings(d.warnings || []);
  renderTrend(d);
  renderAverages(d);
  renderBox(d);
  renderRows(d);
  const q = query();
  document.getElementById("export").href = "/api/export/csv" + (q ? "?" + q : "");
}

function initControls(d) {
  const sel = document.getElementById("player");
  sel.innerHTML = "";
  sel.append(new Option("전체보기", ALL));
  for (const p of d.players) sel.append(new Option(p, p));
  sel.value = state.player;
  sel.onchange = () => { state.player = sel.value; load(); };

  const box = document.getElementById("venues");
  box.innerHTML = "";
  for (const v of d.venues) {
    const label = document.createElement("label");
    const cb = document.createElement("input");
    cb.type = "checkbox";
    cb.checked = true;
    cb.value = v;
    cb.onchange = () => {
      const picked = [...box.querySelectorAll("input:checked")].map(c => c.value);
      state.venues = picked.length === d.venues.length ? null : picked;
      load();
    };
    label.append(cb, " " + v);
    box.append(label);
  }
}

function renderCards(s) {
  document.getElementById("m-rounds").textContent = s.rounds + " 회";
  document.getElementById("m-mean").textContent = s.mean === null ? "–" : s.mean.toFixed(1) + " 타";
  document.getElementById("m-best").textContent = s.rounds ? s.best + " 타" : "–";
  document.getElementById("m-latest").textContent = s.rounds ? s.latest + " 타" : "–";
}

function renderWarnings(warnings) {
  const el = document.getElementById("warnings");
  el.textContent = warnings.length ? "⚠ " + warnings.join(" / ") : "";
}

function renderTrend(d) {
  const hasData = d.trend.some(s => s.points.length);
  document.getElementById("trend-info").hidden = hasData;
  chart("trend").setOption({
    tooltip: { trigger: "axis" },
    legend: { data: d.trend.map(s => s.venue) },
    xAxis: { type: "time" },
    yAxis: { type: "value", inverse: true, scale: true },
    series: d.trend.map(s => ({
      name: s.venue,
      type: "line",
      showSymbol: true,
      symbolSize: 7,
      data: s.points.map(p => [p.date, p.total]),
    })),
  }, true);
}

function renderAverages(d) {
  const showing = !!d.venue_averages;
  document.getElementById("avg-info").hidden = showing;
  document.getElementById("avg").hidden = !showing;
  if (!showing) { chart("avg").clear(); return; }
  chart("avg").setOption({
    tooltip: {},
    xAxis: { type: "category", data: d.venue_averages.map(a => a.venue) },
    yAxis: { type: "value", scale: true },
    series: [{
      type: "bar",
      data: d.venue_averages.map(a => a.mean),
      label: { show: true, position: "top", formatter: p => p.value.toFixed(1) },
    }],
  }, true);
}

function renderBox(d) {
  chart("box").setOption({
    tooltip: {},
    xAxis: { type: "category", data: d.distribution.map(b => b.venue) },
    yAxis: { type: "value", inverse: true, scale: true },
    series: [{
      type: "boxplot",
      data: d.distribution.map(b => [b.min, b.q1, b.median, b.q3, b.max]),
    }],
  }, true);
}

function renderRows(d) {
  const tbody = document.getElementById("rows");
  tbody.innerHTML = "";
  document.getElementById("rows-info").hidden = d.rows.length > 0;
  for (const r of d.rows) {
    const tr = document.createElement("tr");
    for (const cell of [r.date || "날짜미상", r.venue, r.name, r.score]) {
      const td = document.createElement("td");
      td.textContent = cell;
      tr.append(td);
    }
    tbody.append(tr);
  }
}

document.getElementById("refresh").onclick = async () => {
  await fetch("/api/refresh", { method: "POST" });
};

function connect() {
  const proto = location.protocol === "https:" ? "wss:" : "ws:";
  const ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = ev => {
    const msg = JSON.parse(ev.data);
    if (msg.type === "table:reloaded") load();
  };
  ws.onclose = () => setTimeout(connect, 5000);
}

window.addEventListener("resize", () => Object.values(charts).forEach(c => c.resize()));
connect();
load();
</script>
</body>
</html>
`
