package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"google.golang.org/api/iterator"

	"crosswarped.com/nono"
	"crosswarped.com/nono/pkg/primitives"
)

type SolvePuzzleRequest struct {
	Puzzle   *nono.Puzzle `json:"puzzle,omitempty"`
	PuzzleID string       `json:"puzzleId,omitempty"`
	Scope    string       `json:"scope,omitempty"`
}

type SolvePuzzleResponse struct {
	Success   bool     `json:"success"`
	Status    string   `json:"status,omitempty"`
	Grid      [][]int  `json:"grid,omitempty"`
	Solutions []string `json:"solutions,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// clueRow is one line's clue in the puzzle library table, with the clue text
// dot-separated ("3.1.2"; empty string for a blank line).
type clueRow struct {
	Kind     string `bigquery:"kind"` // "row" or "col"
	Position int    `bigquery:"position"`
	Clue     string `bigquery:"clue"`
}

func getPuzzle(ctx context.Context, puzzleID, scope string) (*nono.Puzzle, error) {
	client, err := bigquery.NewClient(ctx, "nono-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query("SELECT kind, position, clue FROM `nono-x.PuzzleLibrary.all_clues` WHERE puzzle_id = @id AND scope = @scope")
	q.Parameters = []bigquery.QueryParameter{
		{Name: "id", Value: puzzleID},
		{Name: "scope", Value: scope},
	}
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var rows, cols []clueRow
	for {
		var row clueRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		switch row.Kind {
		case "row":
			rows = append(rows, row)
		case "col":
			cols = append(cols, row)
		default:
			return nil, fmt.Errorf("clue kind %q is neither row nor col", row.Kind)
		}
	}
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("puzzle %q not found in scope %q", puzzleID, scope)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	sort.Slice(cols, func(i, j int) bool { return cols[i].Position < cols[j].Position })

	puzzle := &nono.Puzzle{Width: len(cols), Height: len(rows)}
	for _, r := range rows {
		clue, err := primitives.ParseClue(r.Clue)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r.Position, err)
		}
		puzzle.RowClues = append(puzzle.RowClues, clue)
	}
	for _, c := range cols {
		clue, err := primitives.ParseClue(c.Clue)
		if err != nil {
			return nil, fmt.Errorf("col %d: %w", c.Position, err)
		}
		puzzle.ColClues = append(puzzle.ColClues, clue)
	}
	return puzzle, nil
}

func execute(ctx context.Context, req SolvePuzzleRequest) (*SolvePuzzleResponse, error) {
	puzzle := req.Puzzle
	if puzzle == nil {
		if req.PuzzleID == "" {
			return nil, fmt.Errorf("either puzzle or puzzleId is required")
		}
		var err error
		puzzle, err = getPuzzle(ctx, req.PuzzleID, req.Scope)
		if err != nil {
			return nil, fmt.Errorf("getPuzzle: %w", err)
		}
		fmt.Printf("Loaded puzzle %s (%dx%d)\n", req.PuzzleID, puzzle.Width, puzzle.Height)
	}

	grid, err := puzzle.ToGrid()
	if err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		fmt.Printf("Setting timeout to %v\n", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := nono.NewSolver().Solve(ctx, grid)

	resp := &SolvePuzzleResponse{
		Success: result.Status == nono.StatusUniqueSolution,
		Status:  result.Status.String(),
		Grid:    grid.Puzzle().Grid,
	}
	for _, sol := range result.Solutions {
		resp.Solutions = append(resp.Solutions, sol.Repr())
	}
	return resp, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solvePuzzle(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolvePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := SolvePuzzleResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	response, err := execute(r.Context(), req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		response = &SolvePuzzleResponse{Success: false, Error: err.Error()}
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve-puzzle", solvePuzzle)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
