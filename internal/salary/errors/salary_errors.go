package salaryerrors

import (
	"net/http"

	"go-hrledger/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be positive",
		http.StatusBadRequest,
	)
	ErrSalaryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"salary already exists for this employee and period",
		http.StatusConflict,
	)
	ErrInvalidAttendance = apperror.New(
		apperror.CodeInvalidInput,
		"present_days plus absent_days cannot exceed working_days",
		http.StatusBadRequest,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary status",
		http.StatusBadRequest,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"salary is already paid",
		http.StatusBadRequest,
	)
	ErrPaidImmutable = apperror.New(
		apperror.CodeInvalidState,
		"a paid salary record cannot be modified",
		http.StatusBadRequest,
	)
	ErrPaidUndeletable = apperror.New(
		apperror.CodeInvalidState,
		"a paid salary record cannot be deleted",
		http.StatusBadRequest,
	)
	ErrNoEligibleEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"no eligible employees found for bulk generation",
		http.StatusBadRequest,
	)
)
