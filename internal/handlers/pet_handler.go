package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/httpresp"
	"github.com/petgroom/scheduler/internal/middleware"
	"github.com/petgroom/scheduler/internal/models"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

type CreatePetRequest struct {
	Name         string   `json:"name" binding:"required"`
	Species      string   `json:"species" binding:"required"`
	Breed        string   `json:"breed"`
	Age          *int     `json:"age"`
	Weight       *float64 `json:"weight"`
	MedicalNotes string   `json:"medical_notes"`
	CustomerID   string   `json:"customer_id" binding:"required"`
}

type UpdatePetRequest struct {
	Name         *string  `json:"name"`
	Species      *string  `json:"species"`
	Breed        *string  `json:"breed"`
	Age          *int     `json:"age"`
	Weight       *float64 `json:"weight"`
	MedicalNotes *string  `json:"medical_notes"`
}

func (h *PetHandler) ListAll(c *gin.Context) {
	var pets []models.Pet
	if err := h.db.Order("name ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Failed to list pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var pets []models.Pet
	if err := h.db.Where("customer_id = ?", userID).Order("name ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Failed to list pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) ListByCustomer(c *gin.Context) {
	var pets []models.Pet
	if err := h.db.
		Where("customer_id = ?", c.Param("customerId")).
		Order("name ASC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Failed to list pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var customer models.User
	err := h.db.First(&customer, "id = ?", req.CustomerID).Error
	if err != nil || customer.Role != models.RoleCustomer {
		httperr.BadRequest(c, "invalid_customer", "Invalid customer")
		return
	}

	pet := models.Pet{
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		Age:          req.Age,
		Weight:       req.Weight,
		MedicalNotes: req.MedicalNotes,
		CustomerID:   customer.ID,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Failed to create pet.")
		return
	}

	httpresp.Created(c, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found")
		return
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = req.Age
	}
	if req.Weight != nil {
		pet.Weight = req.Weight
	}
	if req.MedicalNotes != nil {
		pet.MedicalNotes = *req.MedicalNotes
	}

	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Failed to update pet.")
		return
	}

	httpresp.OK(c, pet)
}

// Delete allows admin/staff to remove any pet; a customer may only
// remove their own.
func (h *PetHandler) Delete(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found")
		return
	}

	if role == models.RoleCustomer && pet.CustomerID != requesterID {
		httperr.Forbidden(c, "forbidden", "You are not allowed to delete this pet")
		return
	}

	if err := h.db.Delete(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Failed to delete pet.")
		return
	}

	c.Status(204)
}
