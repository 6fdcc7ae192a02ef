package httpapi

import (
	"encoding/json"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/skobkin/meshlink/internal/connectors"
	"github.com/skobkin/meshlink/internal/domain"
)

func healthHandler(status func() connectors.ConnectionStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out := struct {
			Status     string                       `json:"status"`
			Connection *connectors.ConnectionStatus `json:"connection,omitempty"`
		}{Status: "ok"}
		if status != nil {
			current := status()
			out.Connection = &current
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func nodesHandler(nodes NodeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		remotes := nodes.Nodes()
		out := struct {
			Local nodeView   `json:"local"`
			Nodes []nodeView `json:"nodes"`
			Count int        `json:"count"`
		}{
			Local: newNodeView(nodes.LocalNode()),
			Nodes: make([]nodeView, 0, len(remotes)),
		}
		for _, n := range remotes {
			out.Nodes = append(out.Nodes, newNodeView(n))
		}
		out.Count = len(out.Nodes)
		writeJSON(w, http.StatusOK, out)
	}
}

func nodeHandler(nodes NodeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		num, err := domain.ParseNodeID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if local := nodes.LocalNode(); local.Num != 0 && local.Num == num {
			writeJSON(w, http.StatusOK, newNodeView(local))
			return
		}
		node, ok := nodes.Node(num)
		if !ok {
			writeError(w, http.StatusNotFound, "node not found")
			return
		}
		writeJSON(w, http.StatusOK, newNodeView(node))
	}
}

func localHandler(nodes NodeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, newNodeView(nodes.LocalNode()))
	}
}

var configJSON = protojson.MarshalOptions{UseProtoNames: true}

func localConfigHandler(nodes NodeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		local := nodes.LocalNode()
		cfg, err := configJSON.Marshal(local.Config)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "encode config")
			return
		}
		module, err := configJSON.Marshal(local.ModuleConfig)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "encode module config")
			return
		}
		out := struct {
			Num          uint32          `json:"num"`
			Config       json.RawMessage `json:"config"`
			ModuleConfig json.RawMessage `json:"module_config"`
		}{
			Num:          local.Num,
			Config:       cfg,
			ModuleConfig: module,
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, struct {
		Error string `json:"error"`
	}{Error: msg})
}
