// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package convert

import (
	"context"

	board_model "github.com/taskbrd/taskbrd/models/board"
	task_model "github.com/taskbrd/taskbrd/models/task"
	api "github.com/taskbrd/taskbrd/modules/structs"
)

// ToBoard converts a board_model.Board to the api.Board summary shape. The
// counters are computed from live data on every call.
func ToBoard(ctx context.Context, b *board_model.Board) (*api.Board, error) {
	memberCount, err := board_model.CountBoardMembers(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	ticketCount, err := task_model.CountTasks(ctx, task_model.SearchOptions{BoardID: b.ID})
	if err != nil {
		return nil, err
	}
	toDoCount, err := task_model.CountTasks(ctx, task_model.SearchOptions{BoardID: b.ID, Status: task_model.StatusToDo})
	if err != nil {
		return nil, err
	}
	highPrioCount, err := task_model.CountTasks(ctx, task_model.SearchOptions{BoardID: b.ID, Priority: task_model.PriorityHigh})
	if err != nil {
		return nil, err
	}

	return &api.Board{
		ID:                 b.ID,
		Title:              b.Title,
		MemberCount:        memberCount,
		TicketCount:        ticketCount,
		TasksToDoCount:     toDoCount,
		TasksHighPrioCount: highPrioCount,
		OwnerID:            b.OwnerID,
	}, nil
}

// ToBoards converts a list of boards to a list of api.Board summaries
func ToBoards(ctx context.Context, boards []*board_model.Board) ([]*api.Board, error) {
	result := make([]*api.Board, len(boards))
	for i := range boards {
		apiBoard, err := ToBoard(ctx, boards[i])
		if err != nil {
			return nil, err
		}
		result[i] = apiBoard
	}
	return result, nil
}

// ToBoardDetail converts a board to its full api.BoardDetail shape with the
// member roster and every task on the board.
func ToBoardDetail(ctx context.Context, b *board_model.Board) (*api.BoardDetail, error) {
	members, err := board_model.GetBoardMembers(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	tasks, err := task_model.FindTasks(ctx, task_model.SearchOptions{BoardID: b.ID})
	if err != nil {
		return nil, err
	}
	apiTasks, err := ToTasks(ctx, tasks)
	if err != nil {
		return nil, err
	}

	return &api.BoardDetail{
		ID:      b.ID,
		Title:   b.Title,
		OwnerID: b.OwnerID,
		Members: ToUsers(members),
		Tasks:   apiTasks,
	}, nil
}

// ToBoardUpdateResponse converts a board to the api.BoardUpdateResponse
// shape, with the owner and members resolved to full accounts.
func ToBoardUpdateResponse(ctx context.Context, b *board_model.Board) (*api.BoardUpdateResponse, error) {
	if err := b.LoadOwner(ctx); err != nil {
		return nil, err
	}
	members, err := board_model.GetBoardMembers(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	return &api.BoardUpdateResponse{
		ID:          b.ID,
		Title:       b.Title,
		OwnerData:   ToUser(b.Owner),
		MembersData: ToUsers(members),
	}, nil
}
