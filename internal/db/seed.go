package db

import (
  "context"
  "encoding/json"

  "gorm.io/datatypes"

  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/types"
)

func jsonStrings(items ...string) datatypes.JSON {
  b, _ := json.Marshal(items)
  return datatypes.JSON(b)
}

func defaultLevels() []*types.Level {
  return []*types.Level{
    {
      Code:                  "absolute_beginner",
      Name:                  "완전 초심자",
      Description:           "해당 분야를 처음 접하는 사람",
      TargetAudience:        "학생, 비전공자",
      Characteristics:       jsonStrings("용어 정의", "비유적 설명", "기초 개념"),
      EstimatedHoursPerWeek: 2,
      SortOrder:             1,
    },
    {
      Code:                  "beginner",
      Name:                  "초심자",
      Description:           "기초 개념을 어느정도 이해한 사람",
      TargetAudience:        "기초 지식이 있는 학습자",
      Characteristics:       jsonStrings("기본 개념", "간단한 실습", "구체적 예제"),
      EstimatedHoursPerWeek: 3,
      SortOrder:             2,
    },
    {
      Code:                  "intermediate",
      Name:                  "중급자",
      Description:           "기본적인 지식을 바탕으로 응용할 수 있는 사람",
      TargetAudience:        "어느정도 경험이 있는 학습자",
      Characteristics:       jsonStrings("실무 활용", "응용 문제", "프로젝트 기반"),
      EstimatedHoursPerWeek: 4,
      SortOrder:             3,
    },
    {
      Code:                  "advanced",
      Name:                  "고급자",
      Description:           "전문적인 지식과 경험을 보유한 사람",
      TargetAudience:        "전문가, 실무진",
      Characteristics:       jsonStrings("심화 개념", "복잡한 문제해결", "최적화"),
      EstimatedHoursPerWeek: 5,
      SortOrder:             4,
    },
    {
      Code:                  "expert",
      Name:                  "전문가",
      Description:           "해당 분야의 깊은 전문성을 가진 사람",
      TargetAudience:        "업계 전문가, 연구자",
      Characteristics:       jsonStrings("최신 기술", "연구 동향", "혁신적 접근"),
      EstimatedHoursPerWeek: 6,
      SortOrder:             5,
    },
  }
}

// SeedLevels inserts the fixed five step level enumeration once.
func (s *StoreService) SeedLevels(ctx context.Context, levelRepo repos.LevelRepo) error {
  count, err := levelRepo.Count(ctx, nil)
  if err != nil {
    return err
  }
  if count > 0 {
    s.log.Debug("Levels already seeded", "count", count)
    return nil
  }

  s.log.Info("Seeding levels...")
  _, err = levelRepo.Create(ctx, nil, defaultLevels())
  return err
}

type sampleTopic struct {
  name        string
  description string
  levelCode   string
}

type sampleCurated struct {
  title              string
  description        string
  mainTopicName      string
  keywords           []string
  learningObjectives []string
  prerequisites      []string
  durationMinutes    int
  difficultyScore    int
}

func sampleTopics() []sampleTopic {
  return []sampleTopic{
    {"웹 개발 기초", "HTML, CSS, JavaScript를 활용한 웹 개발의 기본기", "absolute_beginner"},
    {"Python 프로그래밍", "Python 언어의 기본 문법부터 고급 기능까지", "beginner"},
    {"데이터베이스 설계", "관계형 데이터베이스의 설계 원칙과 최적화", "intermediate"},
    {"클라우드 아키텍처", "AWS, GCP를 활용한 확장 가능한 시스템 설계", "advanced"},
    {"머신러닝 엔지니어링", "프로덕션 환경에서의 ML 모델 운영과 최적화", "expert"},
    {"모바일 앱 개발", "iOS, Android 네이티브 및 크로스 플랫폼 개발", "intermediate"},
    {"DevOps와 CI/CD", "자동화된 배포 파이프라인과 인프라 관리", "advanced"},
    {"UI/UX 디자인", "사용자 중심의 인터페이스 디자인 원칙", "beginner"},
  }
}

func sampleCuratedSubTopics() []sampleCurated {
  return []sampleCurated{
    {
      title:              "HTML 태그의 의미와 구조",
      description:        "HTML의 기본 태그들과 문서 구조를 이해하기",
      mainTopicName:      "웹 개발 기초",
      keywords:           []string{"HTML", "태그", "마크업", "구조"},
      learningObjectives: []string{"HTML 태그의 역할 이해", "기본 웹페이지 구조 파악"},
      prerequisites:      []string{"컴퓨터 기본 사용법"},
      durationMinutes:    45,
      difficultyScore:    2,
    },
    {
      title:              "CSS로 웹페이지 꾸미기",
      description:        "CSS 선택자와 속성을 활용한 스타일링",
      mainTopicName:      "웹 개발 기초",
      keywords:           []string{"CSS", "스타일링", "선택자", "디자인"},
      learningObjectives: []string{"CSS 문법 이해", "기본 스타일 적용"},
      prerequisites:      []string{"HTML 기초"},
      durationMinutes:    60,
      difficultyScore:    3,
    },
    {
      title:              "Python 변수와 데이터 타입",
      description:        "Python의 기본 데이터 타입과 변수 사용법",
      mainTopicName:      "Python 프로그래밍",
      keywords:           []string{"Python", "변수", "데이터타입", "기초"},
      learningObjectives: []string{"변수 선언과 할당", "데이터 타입별 특징 이해"},
      prerequisites:      []string{"프로그래밍 개념"},
      durationMinutes:    40,
      difficultyScore:    2,
    },
    {
      title:              "조건문과 반복문 활용",
      description:        "if문, for문, while문을 활용한 프로그램 제어",
      mainTopicName:      "Python 프로그래밍",
      keywords:           []string{"조건문", "반복문", "제어구조", "로직"},
      learningObjectives: []string{"조건문 작성", "반복문 활용"},
      prerequisites:      []string{"Python 기초 문법"},
      durationMinutes:    50,
      difficultyScore:    4,
    },
    {
      title:              "정규화와 관계 설계",
      description:        "데이터베이스 정규화 과정과 테이블 간 관계 설정",
      mainTopicName:      "데이터베이스 설계",
      keywords:           []string{"정규화", "관계", "ERD", "데이터베이스"},
      learningObjectives: []string{"정규화 원칙 이해", "효율적인 테이블 설계"},
      prerequisites:      []string{"SQL 기초", "데이터베이스 개념"},
      durationMinutes:    80,
      difficultyScore:    6,
    },
    {
      title:              "인덱스 최적화 전략",
      description:        "쿼리 성능 향상을 위한 인덱스 설계와 최적화",
      mainTopicName:      "데이터베이스 설계",
      keywords:           []string{"인덱스", "최적화", "성능", "쿼리"},
      learningObjectives: []string{"인덱스 설계 원칙", "성능 최적화 방법"},
      prerequisites:      []string{"SQL 숙련", "데이터베이스 운영 경험"},
      durationMinutes:    70,
      difficultyScore:    7,
    },
    {
      title:              "마이크로서비스 패턴과 설계",
      description:        "마이크로서비스 아키텍처의 패턴과 설계 원칙",
      mainTopicName:      "클라우드 아키텍처",
      keywords:           []string{"마이크로서비스", "아키텍처", "패턴", "설계"},
      learningObjectives: []string{"마이크로서비스 패턴 이해", "서비스 분해 전략"},
      prerequisites:      []string{"분산 시스템 이해", "클라우드 경험"},
      durationMinutes:    90,
      difficultyScore:    8,
    },
    {
      title:              "MLOps 파이프라인 구축",
      description:        "프로덕션 환경에서의 ML 모델 배포와 모니터링",
      mainTopicName:      "머신러닝 엔지니어링",
      keywords:           []string{"MLOps", "파이프라인", "배포", "모니터링"},
      learningObjectives: []string{"MLOps 프로세스 구축", "모델 모니터링 시스템"},
      prerequisites:      []string{"머신러닝 모델링", "DevOps 경험"},
      durationMinutes:    120,
      difficultyScore:    9,
    },
    {
      title:              "사용자 경험 설계 원칙",
      description:        "사용자 중심 디자인의 기본 원칙과 방법론",
      mainTopicName:      "UI/UX 디자인",
      keywords:           []string{"UX", "사용자경험", "디자인원칙", "방법론"},
      learningObjectives: []string{"UX 디자인 원칙 이해", "사용자 리서치 방법"},
      prerequisites:      []string{"디자인 기초 개념"},
      durationMinutes:    55,
      difficultyScore:    3,
    },
  }
}

// SeedSampleTopics inserts the demo main topics and curated sub topics once.
// Curated rows inherit the level their main topic was seeded with.
func (s *StoreService) SeedSampleTopics(
  ctx context.Context,
  mainTopicRepo repos.MainTopicRepo,
  curatedRepo repos.CuratedSubTopicRepo,
  levelRepo repos.LevelRepo,
) error {
  existing, err := mainTopicRepo.List(ctx, nil)
  if err != nil {
    return err
  }
  if len(existing) > 0 {
    s.log.Debug("Sample topics already seeded", "count", len(existing))
    return nil
  }

  s.log.Info("Seeding sample topics...")

  topics := sampleTopics()
  rows := make([]*types.MainTopic, 0, len(topics))
  for _, t := range topics {
    rows = append(rows, &types.MainTopic{Name: t.name, Description: t.description})
  }
  created, err := mainTopicRepo.Create(ctx, nil, rows)
  if err != nil {
    return err
  }

  topicIDs := make(map[string]int, len(created))
  topicLevels := make(map[string]string, len(topics))
  for i, t := range topics {
    topicIDs[t.name] = created[i].ID
    topicLevels[t.name] = t.levelCode
  }

  curated := make([]*types.CuratedSubTopic, 0)
  for _, c := range sampleCuratedSubTopics() {
    level, err := levelRepo.GetByCode(ctx, nil, topicLevels[c.mainTopicName])
    if err != nil {
      return err
    }
    if level == nil {
      continue
    }
    curated = append(curated, &types.CuratedSubTopic{
      Title:                    c.title,
      Description:              c.description,
      MainTopicID:              topicIDs[c.mainTopicName],
      LevelID:                  level.ID,
      Keywords:                 jsonStrings(c.keywords...),
      LearningObjectives:       jsonStrings(c.learningObjectives...),
      Prerequisites:            jsonStrings(c.prerequisites...),
      EstimatedDurationMinutes: c.durationMinutes,
      DifficultyScore:          c.difficultyScore,
      IsActive:                 true,
    })
  }
  _, err = curatedRepo.Create(ctx, nil, curated)
  return err
}
