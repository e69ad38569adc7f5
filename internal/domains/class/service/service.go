package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"studio/config"
	"studio/infras/otel"
	"studio/infras/s3"
	"studio/internal/domains/class/model"
	"studio/internal/domains/class/model/dto"
	"studio/internal/domains/class/repository"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
)

const (
	cacheGetClass    = "class:get"
	cacheGetAllClass = "class:gets"
	cacheCountClass  = "class:count"
)

type Class interface {
	Create(ctx context.Context, req dto.CreateClassRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClassesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ClassResponse, error)
	Update(ctx context.Context, req dto.UpdateClassRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Class
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Class, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Class {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClassRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL := constant.Empty
	var uploadedObjectName string
	if req.Image != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClass)
		shared.InvalidateCaches(c, s.cache, cacheCountClass)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClassesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClass, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for classes")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count classes")

		return res, fmt.Errorf("failed to count classes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get classes")

		return res, fmt.Errorf("failed to get classes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save classes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountClass, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for class count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count classes")

		return res, fmt.Errorf("failed to count classes: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save class count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetClass, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for class")

		return res, nil
	}

	class, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get class")

		return res, fmt.Errorf("failed to get class: %w", err)
	}

	if class.ID == constant.Empty {
		return res, failure.NotFound("class not found") // nolint:wrapcheck
	}

	res.FromModel(class)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save class to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClassRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentClass, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check class existence")

		return err
	}

	if currentClass.ID == constant.Empty {
		log.Error().Msg("class not found")

		return failure.NotFound("class not found")
	}

	return s.updateInternal(ctx, req, currentClass, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateClassRequest, currentClass model.Class, user string, filter gDto.FilterGroup) error {
	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update class")

		// Cleanup: delete newly uploaded image if DB update fails
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update class: %w", err)
	}

	// Delete old image if update succeeded and new image was uploaded
	if imageURL != constant.Empty && currentClass.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentClass.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClass, currentClass.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete class cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClass)
		shared.InvalidateCaches(c, s.cache, cacheCountClass)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if class exists")

		return fmt.Errorf("failed to check if class exists: %w", err)
	}

	if !exist {
		log.Error().Msg("class not found")

		return failure.NotFound("class not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete class")

		return fmt.Errorf("failed to delete class: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClass, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete class from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClass)
		shared.InvalidateCaches(c, s.cache, cacheCountClass)
	}()

	return nil
}
