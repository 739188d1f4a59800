package http

import (
	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/pkg/response"
)

// taskResp is the wire representation of a task.
type taskResp struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	CreatedAt   response.DateTime `json:"created_at"`
	User        string            `json:"user"`
	UserDisplay string            `json:"user_display"`
}

// taskDetailResp adds the derived display fields served on single-task reads.
type taskDetailResp struct {
	taskResp
	WordCount int  `json:"word_count"`
	IsRecent  bool `json:"is_recent"`
}

func toTaskResp(t model.Task, sc model.Scope) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   response.DateTime(t.CreatedAt),
		User:        sc.Username,
		UserDisplay: sc.Username,
	}
}

func toTaskDetailResp(t model.Task, sc model.Scope) taskDetailResp {
	return taskDetailResp{
		taskResp:  toTaskResp(t, sc),
		WordCount: t.WordCount(),
		IsRecent:  t.IsRecent(),
	}
}

func toTaskRespList(tasks []model.Task, sc model.Scope) []taskResp {
	out := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResp(t, sc))
	}
	return out
}
