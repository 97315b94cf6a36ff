package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"charger-sizing/core/engine"
	"charger-sizing/core/input"
	"charger-sizing/core/output"
	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
	"charger-sizing/internal/logging"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": s.version})
}

// handleSize performs a stateless sizing pass over the request body.
func (s *Server) handleSize(c *gin.Context) {
	var req SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(errors.Wrap(errors.TypeInput, "invalid JSON body", err)))
		return
	}
	if len(req.Chargers) == 0 {
		c.JSON(http.StatusBadRequest, errorBody(errors.Input("chargers list is empty")))
		return
	}
	for i, spec := range req.Chargers {
		if err := input.ValidateSpec(spec); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(errors.Wrap(errors.TypeInput, "charger "+strconv.Itoa(i+1), err)))
			return
		}
	}

	params := req.Parameters.Apply(s.session.Params())
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(errors.Wrap(errors.TypeInput, "invalid parameters", err)))
		return
	}

	res := engine.Run(req.Chargers, params, engine.Options{WithDiagram: req.IncludeDiagram})
	s.writeReport(c, req.Site, params, res)
}

func (s *Server) handleListChargers(c *gin.Context) {
	entries := s.session.Entries()
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (s *Server) handleAddCharger(c *gin.Context) {
	var req AddChargerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(errors.Wrap(errors.TypeInput, "invalid JSON body", err)))
		return
	}
	spec := req.Spec()
	if err := input.ValidateSpec(spec); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(errors.Wrap(errors.TypeInput, "invalid charger", err)))
		return
	}
	entry := s.session.Add(spec)
	logging.Info("charger added",
		zap.String("id", entry.ID),
		zap.String("type", spec.Type.String()),
		zap.Float64("capacity_kw", spec.CapacityKW))
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleRemoveCharger(c *gin.Context) {
	if !s.session.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, errorBody(errors.Input("no charger entry with id %s", c.Param("id"))))
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleClearChargers(c *gin.Context) {
	s.session.Clear()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGetParameters(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Params())
}

func (s *Server) handleSetParameters(c *gin.Context) {
	params := s.session.Params()
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(errors.Wrap(errors.TypeInput, "invalid JSON body", err)))
		return
	}
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(errors.Wrap(errors.TypeInput, "invalid parameters", err)))
		return
	}
	s.session.SetParams(params)
	c.JSON(http.StatusOK, params)
}

// handleDesign recomputes circuit and switchboard designs for the
// current session snapshot.
func (s *Server) handleDesign(c *gin.Context) {
	specs := s.session.Specs()
	if len(specs) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "no_load"})
		return
	}
	res := engine.Run(specs, s.session.Params(), engine.Options{})
	s.writeReport(c, "", s.session.Params(), res)
}

// handleSLD renders the session design as a Graphviz document.
func (s *Server) handleSLD(c *gin.Context) {
	specs := s.session.Specs()
	if len(specs) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "no_load"})
		return
	}

	res := engine.Run(specs, s.session.Params(), engine.Options{WithDiagram: true})
	if res.Graph == nil {
		err := res.DistErr
		if err == nil {
			err = errors.Input("one or more circuits failed sizing")
		}
		c.JSON(http.StatusUnprocessableEntity, errorBody(err))
		return
	}

	var buf bytes.Buffer
	if err := output.RenderDOT(&buf, res.Graph); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(errors.Wrap(errors.TypeInternal, "rendering diagram", err)))
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", buf.Bytes())
}

// writeReport serializes an engine result through the JSON formatter,
// with 422 when sizing or aggregation failed.
func (s *Server) writeReport(c *gin.Context, site string, params types.Parameters, res *engine.Result) {
	report := &output.Report{
		Site:        site,
		GeneratedAt: time.Now().UTC(),
		Version:     s.version,
		Parameters:  params,
		Result:      res,
	}

	status := http.StatusOK
	if res.AggregationSkipped || res.DistErr != nil {
		status = http.StatusUnprocessableEntity
	}

	formatter, err := output.New(output.FormatJSON, output.Options{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(errors.Wrap(errors.TypeInternal, "creating formatter", err)))
		return
	}
	var buf bytes.Buffer
	if err := formatter.Render(&buf, report); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(errors.Wrap(errors.TypeInternal, "rendering report", err)))
		return
	}
	c.Data(status, "application/json; charset=utf-8", buf.Bytes())
}
