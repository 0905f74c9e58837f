package services

import (
	"github.com/terraenergy/prospect-quote-api/internal/jobs"
)

type JobService struct {
	worker *jobs.Worker
}

func NewJobService(worker *jobs.Worker) *JobService {
	return &JobService{
		worker: worker,
	}
}

func (s *JobService) GetStatus() jobs.WorkerStats {
	return s.worker.GetStats()
}
