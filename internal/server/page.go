// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

// indexPage is the upload form. Selecting files renders one order field per
// file (default: upload position, bounded 1..n); submitting posts the form
// and lists the returned downloads and messages.
const indexPage = `<!doctype html>
<html lang="tr">
<head>
<meta charset="utf-8">
<title>Belge Dönüştürücü</title>
<style>
body { font-family: sans-serif; max-width: 46rem; margin: 2rem auto; }
fieldset { margin-bottom: 2rem; }
.row { display: flex; gap: 1rem; align-items: center; margin: .25rem 0; }
.row input { width: 4rem; }
.msg { color: #a00; }
</style>
</head>
<body>
<h1>Belge Dönüştürücü</h1>

<fieldset>
<legend>Word &rarr; PDF</legend>
<form data-endpoint="/v1/convert">
<input type="file" name="files" accept=".doc,.docx" multiple>
<div class="orders"></div>
<label><input type="checkbox" name="no_merge" value="true"> Sadece ZIP</label>
<button type="submit">PDF'e Dönüştür</button>
</form>
<div class="result"></div>
</fieldset>

<fieldset>
<legend>PDF Birleştirici</legend>
<form data-endpoint="/v1/merge">
<input type="file" name="files" accept=".pdf" multiple>
<div class="orders"></div>
<button type="submit">PDF'leri Birleştir</button>
</form>
<div class="result"></div>
</fieldset>

<script>
document.querySelectorAll("form").forEach(function (form) {
  var input = form.querySelector("input[type=file]");
  var orders = form.querySelector(".orders");
  var result = form.parentElement.querySelector(".result");

  input.addEventListener("change", function () {
    orders.innerHTML = "";
    var n = input.files.length;
    Array.from(input.files).forEach(function (f, i) {
      var row = document.createElement("div");
      row.className = "row";
      var num = document.createElement("input");
      num.type = "number"; num.name = "order"; num.min = 1; num.max = n; num.value = i + 1;
      var label = document.createElement("span");
      label.textContent = f.name;
      row.appendChild(num); row.appendChild(label);
      orders.appendChild(row);
    });
  });

  form.addEventListener("submit", function (ev) {
    ev.preventDefault();
    result.textContent = "...";
    fetch(form.dataset.endpoint, { method: "POST", body: new FormData(form) })
      .then(function (r) { return r.json(); })
      .then(function (body) {
        result.innerHTML = "";
        if (body.error) {
          result.textContent = body.error.message;
          return;
        }
        (body.messages || []).forEach(function (m) {
          var p = document.createElement("p");
          p.className = "msg";
          p.textContent = m.kind + ": " + (m.file ? m.file + ": " : "") + m.text;
          result.appendChild(p);
        });
        [["zip", "Ayrı PDF'leri İndir (ZIP)"], ["merged", "Birleştirilmiş PDF'i İndir"]].forEach(function (d) {
          var href = body.downloads[d[0]];
          if (!href) return;
          var a = document.createElement("a");
          a.href = href; a.textContent = d[1];
          var p = document.createElement("p");
          p.appendChild(a);
          result.appendChild(p);
        });
      });
  });
});
</script>
</body>
</html>
`
