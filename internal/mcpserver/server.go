// Package mcpserver exposes the job query service as MCP tools.
//
// It handles only transport concerns: schema-typed inputs and outputs,
// mapping of the service error taxonomy onto tool results, and stdio
// serving. All query logic lives in the jobs package.
package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/roshanpost/jobsearch-mcp/internal/jobs"
	"github.com/roshanpost/jobsearch-mcp/internal/model"
)

const serverName = "JobSearchServer"

// SearchJobsInput is the search_jobs tool input. Every field is optional.
type SearchJobsInput struct {
	Keywords string `json:"keywords,omitempty" jsonschema:"Job title or skills to search for (e.g. python developer, react)"`
	Location string `json:"location,omitempty" jsonschema:"Location to search in (e.g. San Francisco, Remote)"`
	Company  string `json:"company,omitempty" jsonschema:"Company name to filter by"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of results to return (default 10)"`
}

// SearchJobsOutput lists the matching jobs, newest first.
type SearchJobsOutput struct {
	TotalResults int         `json:"total_results"`
	Jobs         []model.Job `json:"jobs"`
}

// GetJobInput is the get_job_by_id tool input.
type GetJobInput struct {
	JobID int64 `json:"job_id" jsonschema:"The unique ID of the job"`
}

// GetJobOutput carries either the matching job or an explicit not-found
// outcome. A missing id is a normal result, never a tool error.
type GetJobOutput struct {
	Found   bool       `json:"found"`
	Job     *model.Job `json:"job,omitempty"`
	Message string     `json:"message,omitempty"`
}

// StatisticsInput is empty: get_job_statistics takes no parameters.
type StatisticsInput struct{}

// New builds the MCP server with the three query tools registered.
func New(svc *jobs.Service, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_jobs",
		Description: "Search job listings by keywords, location, and company. All filters are optional and combined with AND.",
	}, searchJobs(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_job_by_id",
		Description: "Get detailed information about a specific job by its ID.",
	}, getJobByID(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_job_statistics",
		Description: "Get statistics about available jobs: totals, remote count, and top locations and companies.",
	}, getStatistics(svc))

	return server
}

// Run serves the tools over stdio until ctx is cancelled or the client
// disconnects.
func Run(ctx context.Context, svc *jobs.Service, version string) error {
	return New(svc, version).Run(ctx, &mcp.StdioTransport{})
}

func searchJobs(svc *jobs.Service) func(context.Context, *mcp.CallToolRequest, SearchJobsInput) (*mcp.CallToolResult, SearchJobsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in SearchJobsInput) (*mcp.CallToolResult, SearchJobsOutput, error) {
		found, err := svc.SearchJobs(ctx, jobs.SearchQuery{
			Keywords: in.Keywords,
			Location: in.Location,
			Company:  in.Company,
			Limit:    in.Limit,
		})
		if err != nil {
			return nil, SearchJobsOutput{}, err
		}
		return nil, SearchJobsOutput{TotalResults: len(found), Jobs: found}, nil
	}
}

func getJobByID(svc *jobs.Service) func(context.Context, *mcp.CallToolRequest, GetJobInput) (*mcp.CallToolResult, GetJobOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in GetJobInput) (*mcp.CallToolResult, GetJobOutput, error) {
		job, err := svc.GetJobByID(ctx, in.JobID)
		if errors.Is(err, jobs.ErrNotFound) {
			return nil, GetJobOutput{
				Found:   false,
				Message: "no job found with that ID",
			}, nil
		}
		if err != nil {
			return nil, GetJobOutput{}, err
		}
		return nil, GetJobOutput{Found: true, Job: job}, nil
	}
}

func getStatistics(svc *jobs.Service) func(context.Context, *mcp.CallToolRequest, StatisticsInput) (*mcp.CallToolResult, model.Statistics, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in StatisticsInput) (*mcp.CallToolResult, model.Statistics, error) {
		stats, err := svc.Statistics(ctx)
		if err != nil {
			return nil, model.Statistics{}, err
		}
		return nil, *stats, nil
	}
}
