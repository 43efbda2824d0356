package main

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"quadrant-board/board"
	"quadrant-board/models"
)

type textInput struct {
	Text string `json:"text"`
}

func setupRouter(b *board.Board, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)

	// GET /quadrants - Quadrant metadata in display order
	r.GET("/quadrants", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.QuadrantConfigs())
	})

	// GET /tasks - The whole board
	r.GET("/tasks", func(c *gin.Context) {
		c.JSON(http.StatusOK, b.Snapshot())
	})

	// GET /tasks/stats - Counts per quadrant and overall
	r.GET("/tasks/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, b.Stats())
	})

	// POST /tasks/:quadrant - Add a task to the end of a quadrant
	r.POST("/tasks/:quadrant", func(c *gin.Context) {
		quadrant, ok := quadrantParam(c)
		if !ok {
			return
		}

		var input textInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if strings.TrimSpace(input.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
			return
		}

		// Quadrant and text are already checked, so Add always applies here.
		task, _ := b.Add(quadrant, input.Text)
		c.JSON(http.StatusCreated, gin.H{"task": task, "tasks": b.Snapshot()})
	})

	// PUT /tasks/:quadrant/:id - Edit the text of a task
	r.PUT("/tasks/:quadrant/:id", func(c *gin.Context) {
		quadrant, ok := quadrantParam(c)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}

		var input textInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if strings.TrimSpace(input.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
			return
		}

		applied := b.Edit(quadrant, id, input.Text)
		c.JSON(http.StatusOK, gin.H{"applied": applied, "tasks": b.Snapshot()})
	})

	// PATCH /tasks/:quadrant/:id/toggle - Flip the completed flag
	r.PATCH("/tasks/:quadrant/:id/toggle", func(c *gin.Context) {
		quadrant, ok := quadrantParam(c)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}

		applied := b.Toggle(quadrant, id)
		c.JSON(http.StatusOK, gin.H{"applied": applied, "tasks": b.Snapshot()})
	})

	// DELETE /tasks/:quadrant/:id - Delete a task
	r.DELETE("/tasks/:quadrant/:id", func(c *gin.Context) {
		quadrant, ok := quadrantParam(c)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}

		applied := b.Delete(quadrant, id)
		c.JSON(http.StatusOK, gin.H{"applied": applied, "tasks": b.Snapshot()})
	})

	// DELETE /tasks - Delete all tasks
	r.DELETE("/tasks", func(c *gin.Context) {
		b.ClearAll()
		c.JSON(http.StatusOK, gin.H{"tasks": b.Snapshot()})
	})

	// PATCH /tasks/move - Move a task to another quadrant or position
	r.PATCH("/tasks/move", func(c *gin.Context) {
		var input struct {
			From  models.Quadrant `json:"from"`
			To    models.Quadrant `json:"to"`
			ID    int64           `json:"id"`
			Index *int            `json:"index"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if !input.From.Valid() || !input.To.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quadrant"})
			return
		}
		if input.ID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
			return
		}

		index := math.MaxInt
		if input.Index != nil {
			index = *input.Index
		}

		applied := b.Move(input.From, input.To, input.ID, index)
		c.JSON(http.StatusOK, gin.H{"applied": applied, "tasks": b.Snapshot()})
	})

	// GET /events - Stream the board after every change
	r.GET("/events", func(c *gin.Context) {
		updates := make(chan models.Collection, 1)
		unsubscribe := b.Subscribe(func(snap models.Collection) {
			// Only the latest board matters to a slow client.
			select {
			case <-updates:
			default:
			}
			updates <- snap
		})
		defer unsubscribe()

		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")

		c.SSEvent("board", b.Snapshot())
		c.Writer.Flush()

		for {
			select {
			case <-c.Request.Context().Done():
				return
			case snap := <-updates:
				c.SSEvent("board", snap)
				c.Writer.Flush()
			}
		}
	})

	return r
}

func quadrantParam(c *gin.Context) (models.Quadrant, bool) {
	q := models.Quadrant(c.Param("quadrant"))
	if !q.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quadrant"})
		return "", false
	}
	return q, true
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return 0, false
	}
	return id, true
}
