package httpd

import (
	"bufio"
	"net/http"

	"github.com/chenzhuo1005/OpENer/lib/json"
)

func (s *State) showConfigurationHandler(w http.ResponseWriter,
	req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writer := bufio.NewWriter(w)
	defer writer.Flush()
	json.WriteWithIndent(writer, "    ", s.get())
}
