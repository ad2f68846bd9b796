package validation

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/go-playground/validator/v10"
)

func init() {
	validate.RegisterStructValidation(jobSalaryRange, dto.JobRequest{})
}

// jobSalaryRange enforces salary_min <= salary_max when both are present.
func jobSalaryRange(sl validator.StructLevel) {
	job := sl.Current().Interface().(dto.JobRequest)
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMax < *job.SalaryMin {
		sl.ReportError(job.SalaryMax, "salary_max", "SalaryMax", "gtefield", "salary_min")
	}
}
