package preview

import "fmt"

// reloadScript returns the script appended to every served document. It
// polls /version and reloads the page when the document it was rendered
// from is no longer current.
func reloadScript(version int64) string {
	return fmt.Sprintf(`
<script>
(function () {
  var served = %d;
  setInterval(function () {
    fetch('/version', { cache: 'no-store' })
      .then(function (r) { return r.json(); })
      .then(function (v) { if (v.version !== served) location.reload(); })
      .catch(function () {});
  }, 500);
})();
</script>`, version)
}
