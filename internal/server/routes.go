package server

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danmuck/wirecodec/internal/auth"
	"github.com/danmuck/wirecodec/internal/catalog"
	"github.com/danmuck/wirecodec/internal/codec"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type messageInfo struct {
	ID          uint16      `json:"id"`
	Name        string      `json:"name"`
	MinimumSize int         `json:"minimum_size"`
	Fields      []fieldInfo `json:"fields"`
}

type fieldInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type encodeRequest struct {
	Values []string `json:"values"`
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"uptime":   time.Since(s.Appeared).String(),
			"service":  s.Node,
			"version":  version,
			"messages": s.catalog.Len(),
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/messages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"messages": listMessages(s.catalog)})
	})

	post := s.router.Group("/")
	if s.authToken != "" {
		post.Use(auth.Middleware(auth.StaticToken{Token: s.authToken}))
	}

	// Body is raw frame bytes, or hex text when ?format=hex.
	post.POST("/inspect", func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if c.Query("format") == "hex" {
			body, err = hex.DecodeString(strings.TrimSpace(string(body)))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hex body: " + err.Error()})
				return
			}
		}
		frames, err := s.Inspect(body)
		resp := gin.H{"frames": frames}
		if err != nil {
			resp["error"] = err.Error()
			c.JSON(http.StatusUnprocessableEntity, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	post.POST("/encode/:id", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 16)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
			return
		}
		var req encodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		msg, err := s.catalog.EncodeText(uint16(id), req.Values)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, catalog.ErrUnknownMessage) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"hex": hex.EncodeToString(msg), "bytes": len(msg)})
	})
}

func listMessages(cat *catalog.Catalog) []messageInfo {
	msgs := cat.Messages()
	out := make([]messageInfo, 0, len(msgs))
	for _, msg := range msgs {
		fields := make([]fieldInfo, 0, len(msg.Fields))
		for _, f := range msg.Fields {
			fields = append(fields, fieldInfo{Name: f.Name, Type: codec.TypeName(f.Type)})
		}
		out = append(out, messageInfo{
			ID:          msg.ID,
			Name:        msg.Name,
			MinimumSize: msg.MinimumSize(),
			Fields:      fields,
		})
	}
	return out
}
