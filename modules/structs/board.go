// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// Board is the summary representation used by board listings and as the
// response to board creation. The counters are computed from live data.
// swagger:model
type Board struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	// number of members including the owner
	MemberCount int64 `json:"member_count"`
	// total number of tasks on the board
	TicketCount int64 `json:"ticket_count"`
	// number of tasks in the to-do column
	TasksToDoCount int64 `json:"tasks_to_do_count"`
	// number of tasks with high priority
	TasksHighPrioCount int64 `json:"tasks_high_prio_count"`
	OwnerID            int64 `json:"owner_id"`
}

// BoardDetail is the full representation of a single board including its
// member roster and every task on it.
// swagger:model
type BoardDetail struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	OwnerID int64   `json:"owner_id"`
	Members []*User `json:"members"`
	Tasks   []*Task `json:"tasks"`
}

// BoardUpdateResponse is returned after a board was edited. It carries the
// resolved owner and member accounts instead of bare ids.
// swagger:model
type BoardUpdateResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	OwnerData   *User   `json:"owner_data"`
	MembersData []*User `json:"members_data"`
}

// CreateBoardOption is the request body for creating a board
type CreateBoardOption struct {
	// required: true
	Title string `json:"title" binding:"Required;MaxSize(250)"`
	// ids of the initial members, the creator is added regardless
	Members []int64 `json:"members"`
}

// EditBoardOption is the request body for changing a board. Absent fields
// are left untouched; an empty member list reduces the roster to the owner.
type EditBoardOption struct {
	Title   *string  `json:"title" binding:"MaxSize(250)"`
	Members *[]int64 `json:"members"`
}
