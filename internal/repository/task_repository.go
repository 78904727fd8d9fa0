package repository

import (
	"github.com/genapply/genapply/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db}
}

func (r *TaskRepository) CreateTask(task *model.GenerationTask) error {
	return r.db.Create(task).Error
}

func (r *TaskRepository) UpdateTask(task *model.GenerationTask) error {
	return r.db.Save(task).Error
}

func (r *TaskRepository) FindTaskByID(id string) (*model.GenerationTask, error) {
	var task model.GenerationTask
	err := r.db.First(&task, "id = ?", id).Error
	return &task, err
}

func (r *TaskRepository) ListTasks(page, pageSize int) ([]model.GenerationTask, int64, error) {
	var tasks []model.GenerationTask
	var total int64

	if err := r.db.Model(&model.GenerationTask{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&tasks).Error
	return tasks, total, err
}

// FindSimilar returns past extraction tasks whose resume-text embeddings are
// closest to the given vector, using the pgvector distance operator.
func (r *TaskRepository) FindSimilar(embedding pgvector.Vector, topK int) ([]model.GenerationTask, error) {
	var tasks []model.GenerationTask

	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM generation_tasks
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&tasks).Error

	return tasks, err
}
