// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package misc

import (
	"net/http"

	"github.com/taskbrd/taskbrd/modules/setting"
	"github.com/taskbrd/taskbrd/modules/structs"
	"github.com/taskbrd/taskbrd/services/context"
)

// Version shows the version of the server
func Version(ctx *context.APIContext) {
	// swagger:operation GET /version miscellaneous getVersion
	// ---
	// summary: Returns the version of the running server
	// produces:
	// - application/json
	// responses:
	//   "200":
	//     "$ref": "#/responses/ServerVersion"

	ctx.JSON(http.StatusOK, &structs.ServerVersion{Version: setting.AppVer})
}
