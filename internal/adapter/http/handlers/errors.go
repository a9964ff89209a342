package handlers

import (
	"net/http"

	request "brickonomics/internal/adapter/http/dto/request"
	"brickonomics/pkg"
	"brickonomics/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInternal = pkg.NewDomainErrorSimple(pkg.CodeInternal, "An internal error occurred", http.StatusInternalServerError)

// respondError writes appErr's client body. Causes of 5xx errors are logged
// here and never sent to the client.
func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.IsInternal() {
		logger.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondBindError(c *gin.Context, err error) {
	respondError(c, pkg.NewDomainErrorSimple(pkg.CodeValidation, request.BindErrorMessage(err), http.StatusBadRequest))
}

func validationError(err error) *pkg.AppError {
	return pkg.NewDomainError(pkg.CodeValidation, err.Error(), err, http.StatusBadRequest)
}

func notFound(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple(pkg.CodeNotFound, message, http.StatusNotFound)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}
