package handler

import (
	"errors"
	"net/http"

	"simplenotes/dto"
	"simplenotes/middleware"
	"simplenotes/model"
	"simplenotes/usecase"
	"simplenotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	jujuerrors "github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("notes.handler")

const noteNotFoundDetail = "Note not found"

type NoteHandler struct {
	notesService *usecase.NotesService
}

func NewNoteHandler(notesService *usecase.NotesService) *NoteHandler {
	return &NoteHandler{notesService: notesService}
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes := h.notesService.ListNotes(c.Request.Context())
	utils.Success(c, dto.ToNoteResponses(notes))
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var input model.NoteCreate
	if !bindNoteJSON(c, &input) {
		return
	}

	note, err := h.notesService.CreateNote(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.TrackNoteOperation("create")
	middleware.SetNotesStored(h.notesService.CountNotes(c.Request.Context()))
	utils.Created(c, dto.ToNoteResponse(note))
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	noteID, ok := noteIDParam(c)
	if !ok {
		return
	}

	note, err := h.notesService.GetNote(c.Request.Context(), noteID)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	noteID, ok := noteIDParam(c)
	if !ok {
		return
	}

	var patch model.NoteUpdate
	if !bindNoteJSON(c, &patch) {
		return
	}

	note, err := h.notesService.UpdateNote(c.Request.Context(), noteID, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.TrackNoteOperation("update")
	utils.Success(c, dto.ToNoteResponse(note))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID, ok := noteIDParam(c)
	if !ok {
		return
	}

	if err := h.notesService.DeleteNote(c.Request.Context(), noteID); err != nil {
		writeError(c, err)
		return
	}

	middleware.TrackNoteOperation("delete")
	middleware.SetNotesStored(h.notesService.CountNotes(c.Request.Context()))
	utils.NoContent(c)
}

// noteIDParam parses the :id path parameter, answering 422 when it is not
// a UUID.
func noteIDParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	noteID, err := uuid.Parse(raw)
	if err != nil {
		middleware.TrackError("validation")
		utils.UnprocessableEntity(c, []utils.ValidationDetail{{
			Loc:  []interface{}{"path", "note_id"},
			Msg:  "Input should be a valid UUID, " + err.Error(),
			Type: "uuid_parsing",
		}})
		return uuid.Nil, false
	}
	return noteID, true
}

// bindNoteJSON decodes and validates the request body, writing the error
// response itself when it fails.
func bindNoteJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		middleware.TrackError("too_large")
		utils.RequestEntityTooLarge(c, "Request body too large")
		return false
	}

	middleware.TrackError("validation")
	utils.UnprocessableEntity(c, utils.ValidationDetails(err))
	return false
}

// writeError maps service errors onto HTTP responses.
func writeError(c *gin.Context, err error) {
	switch {
	case jujuerrors.Is(err, jujuerrors.NotFound):
		middleware.TrackError("not_found")
		utils.NotFound(c, noteNotFoundDetail)
	case jujuerrors.Is(err, jujuerrors.BadRequest):
		middleware.TrackError("bad_request")
		utils.BadRequest(c, usecase.EmptyUpdateDetail)
	case jujuerrors.Is(err, jujuerrors.NotValid):
		middleware.TrackError("validation")
		utils.UnprocessableEntity(c, []utils.ValidationDetail{{
			Loc:  []interface{}{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}})
	default:
		middleware.TrackError("internal")
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, jujuerrors.ErrorStack(err))
		utils.InternalError(c, http.StatusText(http.StatusInternalServerError))
	}
}
