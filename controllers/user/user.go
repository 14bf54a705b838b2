package userController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	userValidator "coursehub/validators/user"

	"github.com/gofiber/fiber/v2"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

func GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// UpdateUserRole changes a user's role. Demoting the last remaining admin is
// rejected, the system always keeps at least one admin account.
func UpdateUserRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData, ok := c.Locals("validatedRole").(*userValidator.UpdateRoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.Role == models.RoleAdmin && reqData.Role != models.RoleAdmin && isLastAdmin(user.ID) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Cannot change the role of the last admin!", nil)
	}

	user.Role = reqData.Role
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", user)
}

// DeleteUser removes a user account. Deleting the last remaining admin is
// rejected.
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.Role == models.RoleAdmin && isLastAdmin(user.ID) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Cannot delete the last admin!", nil)
	}

	if err := db.Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}

// isLastAdmin reports whether the given admin user is the only admin left.
func isLastAdmin(userID uint) bool {
	var count int64
	database.Database.Db.Model(&models.User{}).
		Where("role = ? AND id <> ?", models.RoleAdmin, userID).Count(&count)
	return count == 0
}
